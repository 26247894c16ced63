package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

type AddItemInput struct {
	RefID          uint   `json:"ref_id" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=product bundle"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	IsSubscription bool   `json:"is_subscription"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type ToggleSubscriptionInput struct {
	IsSubscription *bool `json:"is_subscription" binding:"required"`
}

func profileCart(db *gorm.DB, c *gin.Context) (*models.Cart, bool) {
	profileIDVal, exists := c.Get("profile_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	profileID := profileIDVal.(string)

	var cart models.Cart
	if err := db.Where("profile_id = ?", profileID).First(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile cart not found"})
		return nil, false
	}
	return &cart, true
}

// POST /user/cart
// Adds an item to the cart. An existing row with the same (ref_id,
// is_subscription) absorbs the new quantity instead of duplicating.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.RefID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		itemType := models.CartItemProduct
		if product.IsBundle {
			itemType = models.CartItemBundle
		}
		if models.CartItemType(input.Type) != itemType {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type does not match product"})
			return
		}

		// Subscription pricing only applies to bundles.
		isSubscription := input.IsSubscription && product.IsBundle

		var item models.CartItem
		err := db.Where("cart_id = ? AND ref_id = ? AND is_subscription = ?",
			cart.CartID, input.RefID, isSubscription).First(&item).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
				return
			}

			newItem := models.CartItem{
				CartID:         cart.CartID,
				RefID:          product.ID,
				Type:           itemType,
				Name:           product.Name,
				Unit:           product.Unit,
				UnitPrice:      product.Price,
				Quantity:       input.Quantity,
				IsSubscription: isSubscription,
				ImageURL:       product.ImageURL,
				AddedAt:        time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:item_id
// Sets an item's quantity; zero or negative removes the item entirely.
func UpdateCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}
		itemID := c.Param("item_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Quantity <= 0 {
			result := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).Delete(&models.CartItem{})
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			if result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:item_id/subscription
// Flips the subscription flag on one row in place. The row is NOT merged
// with another row that may now share its (ref_id, is_subscription)
// identity, so a toggle can leave two rows with the same identity.
func ToggleCartItemSubscription(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}
		itemID := c.Param("item_id")

		var input ToggleSubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if item.Type != models.CartItemBundle {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only bundles can be subscribed"})
			return
		}

		item.IsSubscription = *input.IsSubscription
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}
		itemID := c.Param("item_id")

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}
		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
// Returns the cart items along with computed totals.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := profileCart(db, c)
		if !ok {
			return
		}
		var items []models.CartItem
		if err := db.Where("cart_id = ?", cart.CartID).Order("added_at").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":  items,
			"totals": models.ComputeTotals(items),
		})
	}
}

// GET /admin/carts/:profile_id
func GetProfileCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.Param("profile_id")
		if profileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("profile_id = ?", profileID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart.Items)
	}
}
