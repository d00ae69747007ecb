package entity

import (
	"gorm.io/gorm"
)

// Food is one dish on the menu. Not touched by the order pipeline except
// as the source of cart lines.
type Food struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"size:280" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"default:'Main course'" json:"category"`
	ImageURL    string  `json:"imageUrl"`
}
