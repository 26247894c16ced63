package models

import "time"

type OrderStatus string
type DeliveryType string

const (
	OrderStatusPending   OrderStatus = "pending"    // placed, awaiting the market
	OrderStatusPreparing OrderStatus = "preparing"  // market is packing the order
	OrderStatusOnTheWay  OrderStatus = "on_the_way" // courier en route
	OrderStatusDelivered OrderStatus = "delivered"  // customer received the order
	OrderStatusCancelled OrderStatus = "cancelled"  // cancelled before delivery

	DeliverySingle       DeliveryType = "single"
	DeliverySubscription DeliveryType = "subscription"
)

type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	OrderRef      string       `gorm:"uniqueIndex" json:"order_ref"`
	ProfileID     string       `gorm:"not null;index" json:"profile_id"`
	Profile       Profile      `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	MarketID      uint         `gorm:"index" json:"market_id"`
	AddressID     uint         `json:"address_id"`
	Items         []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status        OrderStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	DeliveryType  DeliveryType `gorm:"type:VARCHAR(20);default:'single'" json:"delivery_type"`
	Subtotal      float64      `json:"subtotal"`
	Total         float64      `json:"total"`
	LoyaltyEarned float64      `json:"loyalty_earned"`
	LoyaltySpent  float64      `json:"loyalty_spent"`
	PaymentMethod string       `json:"payment_method"` // "cash", "card", "online" — informational
	CreatedAt     time.Time    `json:"created_at"`
}

// OrderItem snapshots price and quantity at order time; it is never
// recomputed from the live product row.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CanTransition reports whether an order may move from one status to the
// next: pending → preparing → on_the_way → delivered, with cancellation
// allowed from any non-terminal state.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusPreparing
	case OrderStatusPreparing:
		return to == OrderStatusOnTheWay
	case OrderStatusOnTheWay:
		return to == OrderStatusDelivered
	}
	return false
}
