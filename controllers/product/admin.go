package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	CategoryID       uint     `json:"category_id" binding:"required"`
	MarketID         uint     `json:"market_id"`
	Name             string   `json:"name" binding:"required"`
	Slug             string   `json:"slug" binding:"required"`
	Unit             string   `json:"unit" binding:"required"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	ImageURL         string   `json:"image_url"`
	IsBundle         bool     `json:"is_bundle"`
	BundleSizeKg     *float64 `json:"bundle_size_kg"`
	IsSeasonal       bool     `json:"is_seasonal"`
	SeasonStartMonth *int     `json:"season_start_month"`
	SeasonEndMonth   *int     `json:"season_end_month"`
	IsActive         *bool    `json:"is_active"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := models.Product{
			CategoryID:       input.CategoryID,
			MarketID:         input.MarketID,
			Name:             input.Name,
			Slug:             input.Slug,
			Unit:             input.Unit,
			Description:      input.Description,
			Price:            input.Price,
			ImageURL:         input.ImageURL,
			IsBundle:         input.IsBundle,
			BundleSizeKg:     input.BundleSizeKg,
			IsSeasonal:       input.IsSeasonal,
			SeasonStartMonth: input.SeasonStartMonth,
			SeasonEndMonth:   input.SeasonEndMonth,
			IsActive:         true,
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.CategoryID = input.CategoryID
		product.MarketID = input.MarketID
		product.Name = input.Name
		product.Slug = input.Slug
		product.Unit = input.Unit
		product.Description = input.Description
		product.Price = input.Price
		product.ImageURL = input.ImageURL
		product.IsBundle = input.IsBundle
		product.BundleSizeKg = input.BundleSizeKg
		product.IsSeasonal = input.IsSeasonal
		product.SeasonStartMonth = input.SeasonStartMonth
		product.SeasonEndMonth = input.SeasonEndMonth
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id (soft delete)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
