package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignInWindowOpenEnded(t *testing.T) {
	now := time.Now()
	assert.True(t, Campaign{}.InWindow(now))
}

func TestCampaignInWindowBounds(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, Campaign{StartDate: &start, EndDate: &end}.InWindow(now))

	future := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, Campaign{StartDate: &future}.InWindow(now))

	past := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, Campaign{EndDate: &past}.InWindow(now))
}
