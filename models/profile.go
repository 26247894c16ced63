package models

import "time"

type Profile struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	PhoneNumber    string    `gorm:"unique;not null" json:"phone_number"`
	FullName       string    `json:"full_name"`
	LoyaltyBalance float64   `gorm:"not null;default:0" json:"loyalty_balance"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	Addresses      []Address `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Cart           Cart      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders         []Order   `gorm:"foreignKey:ProfileID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Address struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID    string    `gorm:"index;not null" json:"profile_id"`
	Label        string    `json:"label"`
	FullAddress  string    `gorm:"not null" json:"full_address"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}
