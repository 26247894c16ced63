package models

import "time"

type Market struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"unique;not null" json:"slug"`
	Description  string    `json:"description"`
	Rating       float64   `json:"rating"`
	RatingCount  int       `json:"rating_count"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	HeroImageURL string    `json:"hero_image_url"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	// Computed for listings, never stored.
	DistanceMeters int `gorm:"-" json:"distance_meters,omitempty"`
}
