package campaignControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

// FilterRunning keeps only campaigns whose date window contains now.
// Open-ended windows (nil dates) are done in Go, not SQL, because the
// null handling gets awkward in a single where clause.
func FilterRunning(campaigns []models.Campaign, now time.Time) []models.Campaign {
	running := make([]models.Campaign, 0, len(campaigns))
	for _, cp := range campaigns {
		if cp.InWindow(now) {
			running = append(running, cp)
		}
	}
	return running
}

// GET /campaigns
func GetActiveCampaigns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var campaigns []models.Campaign
		if err := db.
			Where("is_active = ?", true).
			Order("priority DESC").
			Order("created_at DESC").
			Find(&campaigns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
			return
		}
		c.JSON(http.StatusOK, FilterRunning(campaigns, time.Now()))
	}
}

// GET /campaigns/:id
func GetCampaignByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.First(&campaign, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve campaign"})
			}
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

type CampaignInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    *bool      `json:"is_active"`
	Priority    int        `json:"priority"`
}

// POST /admin/campaigns
func CreateCampaign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CampaignInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		campaign := models.Campaign{
			Title:       input.Title,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			IsActive:    true,
			Priority:    input.Priority,
		}
		if input.IsActive != nil {
			campaign.IsActive = *input.IsActive
		}

		if err := db.Create(&campaign).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
			return
		}
		c.JSON(http.StatusCreated, campaign)
	}
}

// DELETE /admin/campaigns/:id
func DeleteCampaign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Campaign{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
	}
}
