package entity

import (
	"gorm.io/gorm"
)

// PaymentDetails is the recorded (never charged) payment info. Which fields
// must be set depends on the order's PaymentMethod; the rest stay empty.
type PaymentDetails struct {
	CardHolder string `json:"cardHolder,omitempty"`
	CardLast4  string `json:"cardLast4,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"`
	BizumPhone string `json:"bizumPhone,omitempty"`
}

type Order struct {
	gorm.Model
	CustomerName string `gorm:"not null" json:"customerName"`
	Address      string `gorm:"not null" json:"address"`
	Phone        string `gorm:"not null" json:"phone"`
	Email        string `gorm:"not null" json:"email"`

	PaymentMethod  string         `gorm:"not null" json:"paymentMethod"`
	PaymentDetails PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"paymentDetails"`

	Status string  `gorm:"default:Pending" json:"status"`
	Total  float64 `gorm:"not null" json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
