package models

import "time"

// ContentBlock is editor-managed static copy (terms, about, loyalty info)
// keyed by a stable identifier.
type ContentBlock struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
