package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextSunday(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wednesday := time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)
	next := NextSunday(wednesday)
	assert.Equal(t, time.Sunday, next.Weekday())
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), next)
}

func TestNextSundayFromSundayIsAWeekOut(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	next := NextSunday(sunday)
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), next)
}
