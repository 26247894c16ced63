package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	ProfileID        string             `gorm:"not null;index" json:"profile_id"`
	Name             string             `gorm:"not null" json:"name"`
	MarketID         uint               `json:"market_id"`
	Status           SubscriptionStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	WeeklyQuantityKg *float64           `json:"weekly_quantity_kg,omitempty"`
	MonthlyPrice     float64            `json:"monthly_price"`
	NextDeliveryDate time.Time          `json:"next_delivery_date"`
	CreatedAt        time.Time          `json:"created_at"`
}

// NextSunday returns the first Sunday strictly after t, at midnight.
// Subscription boxes go out Sunday mornings.
func NextSunday(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	days := (int(time.Sunday) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return d.AddDate(0, 0, days)
}
