package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPreparing):
		return models.OrderStatusPreparing, nil
	case string(models.OrderStatusOnTheWay):
		return models.OrderStatusOnTheWay, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Profile").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")

		var orders []models.Order
		if err := db.
			Where("profile_id = ?", profileID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
// Accepts either the numeric id or the order reference.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("profile_id = ?", profileID).
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
// Validates the transition against the order state machine before writing
// and pushes the update to tracking clients.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !models.CanTransition(order.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "cannot move order from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		order.Status = newStatus
		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// POST /user/orders/:orderID/delivered
// Lets the customer close out their own in-flight order from the
// tracking screen.
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, _ := c.Get("profile_id")
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Where("id = ? AND profile_id = ?", orderID, profileID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// The tracking screen may close out an order from any in-flight
		// state, skipping intermediate statuses.
		if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "order is already closed"})
			return
		}

		order.Status = models.OrderStatusDelivered
		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusDelivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}
