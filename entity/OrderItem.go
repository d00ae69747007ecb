package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot of one cart line at submission time. FoodID stays
// a plain string so orders survive menu edits and deletions.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	FoodID   string  `gorm:"not null" json:"foodId"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity float64 `gorm:"not null" json:"quantity"`
}
