package models

import "time"

type Campaign struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	Priority    int        `gorm:"default:0" json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InWindow reports whether the campaign is running at the given instant.
// A nil start or end date leaves that side of the window open.
func (cp Campaign) InWindow(now time.Time) bool {
	if cp.StartDate != nil && now.Before(*cp.StartDate) {
		return false
	}
	if cp.EndDate != nil && now.After(*cp.EndDate) {
		return false
	}
	return true
}
