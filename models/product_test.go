package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestInSeasonNonSeasonalAlwaysTrue(t *testing.T) {
	p := Product{IsSeasonal: false}
	assert.True(t, p.InSeason(time.January))
	assert.True(t, p.InSeason(time.July))
}

func TestInSeasonSimpleWindow(t *testing.T) {
	p := Product{IsSeasonal: true, SeasonStartMonth: intPtr(5), SeasonEndMonth: intPtr(9)}
	assert.True(t, p.InSeason(time.May))
	assert.True(t, p.InSeason(time.July))
	assert.True(t, p.InSeason(time.September))
	assert.False(t, p.InSeason(time.April))
	assert.False(t, p.InSeason(time.October))
}

func TestInSeasonWrappingWindow(t *testing.T) {
	// November through February wraps the year end.
	p := Product{IsSeasonal: true, SeasonStartMonth: intPtr(11), SeasonEndMonth: intPtr(2)}
	assert.True(t, p.InSeason(time.November))
	assert.True(t, p.InSeason(time.December))
	assert.True(t, p.InSeason(time.January))
	assert.True(t, p.InSeason(time.February))
	assert.False(t, p.InSeason(time.March))
	assert.False(t, p.InSeason(time.October))
}
