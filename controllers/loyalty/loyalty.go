package loyaltyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

// Earn credits amount to the profile balance and logs the transaction.
// Amounts are computed by callers and are always >= 0.
func Earn(db *gorm.DB, profileID string, amount float64, description string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).Where("id = ?", profileID).
			UpdateColumn("loyalty_balance", gorm.Expr("loyalty_balance + ?", amount)).Error; err != nil {
			return err
		}
		return tx.Create(&models.LoyaltyTransaction{
			ProfileID:   profileID,
			Type:        models.LoyaltyEarn,
			Amount:      amount,
			Description: description,
		}).Error
	})
}

// Redeem debits amount from the profile balance, flooring at zero, and
// logs the transaction. Callers are responsible for capping the amount at
// the current balance beforehand; the floor only guards against misuse.
func Redeem(db *gorm.DB, profileID string, amount float64, description string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).Where("id = ?", profileID).
			UpdateColumn("loyalty_balance", gorm.Expr("GREATEST(loyalty_balance - ?, 0)", amount)).Error; err != nil {
			return err
		}
		return tx.Create(&models.LoyaltyTransaction{
			ProfileID:   profileID,
			Type:        models.LoyaltySpend,
			Amount:      amount,
			Description: description,
		}).Error
	})
}

// GET /user/loyalty
func GetBalance(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loyalty_balance": profile.LoyaltyBalance})
	}
}

// GET /user/loyalty/transactions
func GetTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var transactions []models.LoyaltyTransaction
		if err := db.Where("profile_id = ?", profileID).
			Order("created_at DESC").
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}
