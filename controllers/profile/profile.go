package profileControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
}

type AddressInput struct {
	Label        string   `json:"label"`
	FullAddress  string   `json:"full_address" binding:"required"`
	Neighborhood string   `json:"neighborhood" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	IsDefault    bool     `json:"is_default"`
}

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var profile models.Profile
		if err := db.Preload("Addresses").First(&profile, "id = ?", profileID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// PUT /user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.FullName != nil {
			if err := db.Model(&profile).Update("full_name", *input.FullName).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}
		c.JSON(http.StatusOK, profile)
	}
}

// GET /user/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var addresses []models.Address
		if err := db.Where("profile_id = ?", profileID).
			Order("is_default DESC, created_at ASC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileIDVal, _ := c.Get("profile_id")
		profileID := profileIDVal.(string)

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			ProfileID:    profileID,
			Label:        input.Label,
			FullAddress:  input.FullAddress,
			Neighborhood: input.Neighborhood,
			City:         input.City,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
			IsDefault:    input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.Address{}).Where("profile_id = ?", profileID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		result := db.Where("id = ? AND profile_id = ?", c.Param("id"), profileID).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
