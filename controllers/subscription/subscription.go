package subscriptionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

// GET /user/subscriptions
func GetSubscriptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var subscriptions []models.Subscription
		if err := db.Where("profile_id = ?", profileID).
			Order("created_at DESC").
			Find(&subscriptions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}
		c.JSON(http.StatusOK, subscriptions)
	}
}

// PUT /user/subscriptions/:id/pause
func PauseSubscription(db *gorm.DB) gin.HandlerFunc {
	return setSubscriptionStatus(db, models.SubscriptionActive, models.SubscriptionPaused)
}

// PUT /user/subscriptions/:id/resume
func ResumeSubscription(db *gorm.DB) gin.HandlerFunc {
	return setSubscriptionStatus(db, models.SubscriptionPaused, models.SubscriptionActive)
}

// PUT /user/subscriptions/:id/cancel
// Cancellation is allowed from either active or paused; it is terminal.
func CancelSubscription(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		result := db.Model(&models.Subscription{}).
			Where("id = ? AND profile_id = ? AND status <> ?",
				c.Param("id"), profileID, models.SubscriptionCancelled).
			Update("status", models.SubscriptionCancelled)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
	}
}

func setSubscriptionStatus(db *gorm.DB, from, to models.SubscriptionStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		result := db.Model(&models.Subscription{}).
			Where("id = ? AND profile_id = ? AND status = ?", c.Param("id"), profileID, from).
			Update("status", to)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription updated"})
	}
}
