package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

type PhoneLoginInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	FullName    string `json:"full_name"`
}

// POST /auth/login
// Finds or creates the profile for a phone number and issues a JWT. New
// profiles get a welcome loyalty bonus and an empty cart.
func PhoneLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PhoneLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var profile models.Profile
		err := db.Where("phone_number = ?", input.PhoneNumber).First(&profile).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up profile"})
				return
			}

			name := input.FullName
			if name == "" {
				name = "Yeni Kullanıcı"
			}
			profile = models.Profile{
				ID:             uuid.NewString(),
				PhoneNumber:    input.PhoneNumber,
				FullName:       name,
				LoyaltyBalance: models.WelcomeBonus,
			}

			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&profile).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.Cart{ProfileID: profile.ID}).Error; err != nil {
					return err
				}
				return tx.Create(&models.LoyaltyTransaction{
					ProfileID:   profile.ID,
					Type:        models.LoyaltyEarn,
					Amount:      models.WelcomeBonus,
					Description: "Hoş geldin bonusu",
				}).Error
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
				return
			}
		}

		token, err := issueToken(profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"profile": profile,
			"token":   token,
		})
	}
}

func issueToken(profileID string) (string, error) {
	claims := jwt.MapClaims{
		"profile_id": profileID,
		"exp":        time.Now().Add(30 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
