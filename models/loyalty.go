package models

import (
	"math"
	"time"
)

type LoyaltyTransactionType string

const (
	LoyaltyEarn  LoyaltyTransactionType = "earn"
	LoyaltySpend LoyaltyTransactionType = "spend"
)

// WelcomeBonus is credited to every newly created profile.
const WelcomeBonus = 15

type LoyaltyTransaction struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	ProfileID   string                 `gorm:"not null;index" json:"profile_id"`
	Type        LoyaltyTransactionType `gorm:"type:VARCHAR(10);not null" json:"type"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"created_at"`
}

// EarnedPoints is 1 point per 100 TL of the final charged total, floored.
func EarnedPoints(finalTotal float64) float64 {
	return math.Floor(finalTotal / 100)
}

// MaxRedeemable caps a redemption at both the available balance and the
// order's grand total. A spend may never exceed either.
func MaxRedeemable(balance, grandTotal float64) float64 {
	return math.Min(balance, grandTotal)
}
