package campaignControllers

import (
	"testing"
	"time"

	"github.com/sph0ngl3/Pazarm/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterRunningKeepsOrder(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	ended := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	campaigns := []models.Campaign{
		{ID: 1, Title: "open ended"},
		{ID: 2, Title: "expired", EndDate: &ended},
		{ID: 3, Title: "also open"},
	}

	running := FilterRunning(campaigns, now)

	assert.Len(t, running, 2)
	assert.Equal(t, uint(1), running[0].ID)
	assert.Equal(t, uint(3), running[1].ID)
}
