package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sph0ngl3/Pazarm/models"
	"github.com/sph0ngl3/Pazarm/saga"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart = errors.New("sepetiniz boş")
	ErrNoAddress = errors.New("kayıtlı teslimat adresi yok")
)

type CheckoutRequest struct {
	AddressID     *uint  `json:"address_id"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card online"`
	UsePoints     bool   `json:"use_points"`
}

// CheckoutAmounts resolves the loyalty arithmetic for an order: the
// discount actually applied, the final charged total, and the points the
// order earns (1 per 100 TL of the final total, floored).
func CheckoutAmounts(totals models.CartTotals, balance float64, usePoints bool) (discount, finalTotal, earned float64) {
	if usePoints {
		discount = models.MaxRedeemable(balance, totals.GrandTotal)
	}
	finalTotal = totals.GrandTotal - discount
	earned = models.EarnedPoints(finalTotal)
	return discount, finalTotal, earned
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout turns the profile's cart into an order. The writes — order,
// loyalty adjustments, subscription, cart clear — run as saga steps with
// compensation, so a failed step rolls back the completed ones before the
// error is returned.
func Checkout(ctx context.Context, db *gorm.DB, profileID string, req CheckoutRequest) (*models.Order, error) {
	var profile models.Profile
	if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("profile_id = ?", profileID).First(&cart).Error; err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	address, err := resolveAddress(db, profileID, req.AddressID)
	if err != nil {
		return nil, err
	}

	totals := models.ComputeTotals(cart.Items)
	discount, finalTotal, earned := CheckoutAmounts(totals, profile.LoyaltyBalance, req.UsePoints)

	deliveryType := models.DeliverySingle
	var firstSubscribed *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].IsSubscription {
			deliveryType = models.DeliverySubscription
			if firstSubscribed == nil {
				firstSubscribed = &cart.Items[i]
			}
		}
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.RefID,
			Name:      item.Name,
			Unit:      item.Unit,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	order := &models.Order{
		OrderRef:      generateOrderRef(),
		ProfileID:     profileID,
		MarketID:      marketForItems(db, cart.Items),
		AddressID:     address.ID,
		Items:         orderItems,
		Status:        models.OrderStatusPreparing,
		DeliveryType:  deliveryType,
		Subtotal:      totals.GrandTotal,
		Total:         finalTotal,
		LoyaltyEarned: earned,
		LoyaltySpent:  discount,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	steps := []saga.Step{
		&createOrderStep{db: db, order: order},
	}
	if discount > 0 {
		steps = append(steps, &redeemPointsStep{
			db: db, profileID: profileID, amount: discount, orderRef: order.OrderRef,
		})
	}
	steps = append(steps, &earnPointsStep{
		db: db, profileID: profileID, amount: earned, orderRef: order.OrderRef,
	})
	if firstSubscribed != nil {
		// Only the first subscription-flagged item becomes a subscription,
		// even when the cart holds several.
		steps = append(steps, &createSubscriptionStep{
			db: db,
			subscription: &models.Subscription{
				ProfileID:        profileID,
				Name:             firstSubscribed.Name,
				MarketID:         order.MarketID,
				Status:           models.SubscriptionActive,
				MonthlyPrice:     firstSubscribed.MonthlyPrice(),
				NextDeliveryDate: models.NextSunday(time.Now()),
			},
		})
	}
	steps = append(steps, &clearCartStep{db: db, cartID: cart.CartID})

	if err := saga.NewOrchestrator(steps).Run(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// resolveAddress picks the requested address if it belongs to the
// profile, otherwise the default one, otherwise the first on file.
func resolveAddress(db *gorm.DB, profileID string, addressID *uint) (*models.Address, error) {
	var address models.Address
	if addressID != nil {
		if err := db.Where("id = ? AND profile_id = ?", *addressID, profileID).First(&address).Error; err != nil {
			return nil, ErrNoAddress
		}
		return &address, nil
	}
	err := db.Where("profile_id = ?", profileID).
		Order("is_default DESC, created_at ASC").
		First(&address).Error
	if err != nil {
		return nil, ErrNoAddress
	}
	return &address, nil
}

// marketForItems derives the fulfilling market from the first cart item's
// product row. Carts are filled from one market's catalog at a time.
func marketForItems(db *gorm.DB, items []models.CartItem) uint {
	var product models.Product
	if err := db.First(&product, "id = ?", items[0].RefID).Error; err != nil {
		log.Printf("marketForItems: lookup of product %d failed: %v", items[0].RefID, err)
		return 0
	}
	return product.MarketID
}

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileIDVal, exists := c.Get("profile_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := Checkout(c.Request.Context(), db, profileIDVal.(string), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrNoAddress):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Sipariş oluşturulamadı"})
			}
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusCreated, order)
	}
}
