package marketControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersSamePoint(t *testing.T) {
	assert.Equal(t, 0, DistanceMeters(36.76, 34.53, 36.76, 34.53))
}

func TestDistanceMetersKnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d := DistanceMeters(36.0, 34.53, 37.0, 34.53)
	assert.InDelta(t, 111200, d, 300)
}

func TestDistanceMetersSymmetric(t *testing.T) {
	a := DistanceMeters(36.7667, 34.5333, 36.7800, 34.5500)
	b := DistanceMeters(36.7800, 34.5500, 36.7667, 34.5333)
	assert.Equal(t, a, b)
	assert.Greater(t, a, 0)
}
