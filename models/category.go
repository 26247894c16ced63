package models

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Slug         string    `gorm:"unique;not null" json:"slug"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	ImageURL     string    `json:"image_url"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
