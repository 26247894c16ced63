package models

import "time"

type CartItemType string

const (
	CartItemProduct CartItemType = "product"
	CartItemBundle  CartItemType = "bundle"
)

// Subscription pricing: weekly price gets a 10% discount and is billed
// as one monthly charge covering four weekly deliveries.
const (
	SubscriptionWeeklyFactor = 0.9
	SubscriptionWeeks        = 4
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	ProfileID string     `gorm:"uniqueIndex" json:"profile_id"` // one cart per profile
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem identity within a cart is (RefID, IsSubscription), not the row ID:
// adding the same reference with the same subscription flag merges quantities.
type CartItem struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	CartID         uint         `gorm:"index" json:"cart_id"`
	RefID          uint         `gorm:"not null" json:"ref_id"` // product or bundle id
	Type           CartItemType `gorm:"type:VARCHAR(10);not null" json:"type"`
	Name           string       `json:"name"`
	Unit           string       `json:"unit"`
	UnitPrice      float64      `json:"unit_price"`
	Quantity       int          `json:"quantity"`
	IsSubscription bool         `gorm:"default:false" json:"is_subscription"` // bundles only
	ImageURL       string       `json:"image_url"`
	AddedAt        time.Time    `json:"added_at"`
}

// MonthlyPrice is the amount billed per monthly cycle when the item is
// subscription-flagged: discounted weekly price times four weeks.
func (i CartItem) MonthlyPrice() float64 {
	return i.UnitPrice * SubscriptionWeeklyFactor * SubscriptionWeeks * float64(i.Quantity)
}

// LineTotal is what the item contributes to the cart's grand total.
func (i CartItem) LineTotal() float64 {
	if i.IsSubscription {
		return i.MonthlyPrice()
	}
	return i.UnitPrice * float64(i.Quantity)
}

type CartTotals struct {
	OneTimeTotal      float64 `json:"one_time_total"`
	SubscriptionTotal float64 `json:"subscription_total"`
	GrandTotal        float64 `json:"grand_total"`
}

// ComputeTotals partitions items by subscription flag and sums line totals.
// Pure: no side effects, safe to call repeatedly.
func ComputeTotals(items []CartItem) CartTotals {
	var t CartTotals
	for _, item := range items {
		if item.IsSubscription {
			t.SubscriptionTotal += item.LineTotal()
		} else {
			t.OneTimeTotal += item.LineTotal()
		}
	}
	t.GrandTotal = t.OneTimeTotal + t.SubscriptionTotal
	return t
}
