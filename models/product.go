package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint    `gorm:"index;not null" json:"category_id"`
	MarketID    uint    `gorm:"index" json:"market_id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;not null" json:"slug"`
	Unit        string  `gorm:"not null" json:"unit"` // e.g. "KG", "Adet", "Koli"
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image_url"`

	// Bundles are fixed-composition packages sold as one product row,
	// one-time or as a weekly subscription.
	IsBundle     bool     `gorm:"default:false" json:"is_bundle"`
	BundleSizeKg *float64 `json:"bundle_size_kg,omitempty"`

	IsSeasonal       bool `gorm:"default:false" json:"is_seasonal"`
	SeasonStartMonth *int `json:"season_start_month,omitempty"`
	SeasonEndMonth   *int `json:"season_end_month,omitempty"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InSeason reports whether the product is available in the given month.
// Non-seasonal products are always in season. Windows may wrap the year
// end (e.g. November through February).
func (p Product) InSeason(month time.Month) bool {
	if !p.IsSeasonal || p.SeasonStartMonth == nil || p.SeasonEndMonth == nil {
		return true
	}
	m, start, end := int(month), *p.SeasonStartMonth, *p.SeasonEndMonth
	if start <= end {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}
