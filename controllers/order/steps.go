package orderControllers

import (
	"context"
	"fmt"

	loyaltyControllers "github.com/sph0ngl3/Pazarm/controllers/loyalty"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

// Checkout saga steps. Each writes one piece of the checkout and can undo
// it, so a failure partway through never leaves a half-committed order.

// --- createOrderStep ---

type createOrderStep struct {
	db    *gorm.DB
	order *models.Order
}

func (s *createOrderStep) Name() string { return "create_order" }

func (s *createOrderStep) Execute(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Create(s.order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *createOrderStep) Compensate(ctx context.Context) error {
	// The order row stays as an audit trail; cancelling is the undo.
	return s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", s.order.ID).
		Update("status", models.OrderStatusCancelled).Error
}

// --- redeemPointsStep ---

type redeemPointsStep struct {
	db        *gorm.DB
	profileID string
	amount    float64
	orderRef  string
}

func (s *redeemPointsStep) Name() string { return "redeem_points" }

func (s *redeemPointsStep) Execute(ctx context.Context) error {
	return loyaltyControllers.Redeem(s.db.WithContext(ctx), s.profileID, s.amount,
		"Sipariş indirimi "+s.orderRef)
}

func (s *redeemPointsStep) Compensate(ctx context.Context) error {
	return loyaltyControllers.Earn(s.db.WithContext(ctx), s.profileID, s.amount,
		"İade: sipariş indirimi "+s.orderRef)
}

// --- earnPointsStep ---

type earnPointsStep struct {
	db        *gorm.DB
	profileID string
	amount    float64
	orderRef  string
}

func (s *earnPointsStep) Name() string { return "earn_points" }

func (s *earnPointsStep) Execute(ctx context.Context) error {
	return loyaltyControllers.Earn(s.db.WithContext(ctx), s.profileID, s.amount,
		"Sipariş puanı "+s.orderRef)
}

func (s *earnPointsStep) Compensate(ctx context.Context) error {
	return loyaltyControllers.Redeem(s.db.WithContext(ctx), s.profileID, s.amount,
		"Düzeltme: sipariş puanı "+s.orderRef)
}

// --- createSubscriptionStep ---

type createSubscriptionStep struct {
	db           *gorm.DB
	subscription *models.Subscription
}

func (s *createSubscriptionStep) Name() string { return "create_subscription" }

func (s *createSubscriptionStep) Execute(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Create(s.subscription).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (s *createSubscriptionStep) Compensate(ctx context.Context) error {
	return s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("id = ?", s.subscription.ID).
		Update("status", models.SubscriptionCancelled).Error
}

// --- clearCartStep ---

type clearCartStep struct {
	db     *gorm.DB
	cartID uint
}

func (s *clearCartStep) Name() string { return "clear_cart" }

func (s *clearCartStep) Execute(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("cart_id = ?", s.cartID).
		Delete(&models.CartItem{}).Error
}

// Terminal step: nothing after it can fail, so no undo is needed.
func (s *clearCartStep) Compensate(ctx context.Context) error { return nil }
