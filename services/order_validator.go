package services

import (
	"errors"
	"math"
	"strings"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
)

// Wire format of a checkout request. Quantity is a plain number on the wire;
// well-behaved clients send integers but the validator only requires >= 1.
type OrderItemIn struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type PaymentDetailsIn struct {
	CardHolder string `json:"cardHolder"`
	CardLast4  string `json:"cardLast4"`
	CardExpiry string `json:"cardExpiry"`
	BizumPhone string `json:"bizumPhone"`
}

type OrderPayload struct {
	CustomerName   string            `json:"customerName"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	PaymentMethod  string            `json:"paymentMethod"`
	PaymentDetails *PaymentDetailsIn `json:"paymentDetails"`
	Items          []OrderItemIn     `json:"items"`
	Total          float64           `json:"total"`
}

// ValidateOrderPayload rejects a payload on the first rule it breaks and
// reports that single rule. No I/O; safe to call with literal payloads.
func ValidateOrderPayload(p *OrderPayload) error {
	if p == nil {
		return errors.New("Invalid payload.")
	}
	if p.CustomerName == "" {
		return errors.New("Name is required.")
	}
	if p.Address == "" {
		return errors.New("Address is required.")
	}
	if p.Phone == "" {
		return errors.New("Phone is required.")
	}
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return errors.New("A valid email is required.")
	}
	if p.PaymentMethod == "" {
		return errors.New("Payment method is required.")
	}
	if !entity.ValidPaymentMethod(p.PaymentMethod) {
		return errors.New("Payment method is not valid.")
	}
	if p.PaymentMethod == entity.PaymentCard {
		if p.PaymentDetails == nil {
			return errors.New("Card details are required.")
		}
		if p.PaymentDetails.CardHolder == "" {
			return errors.New("Card holder is required.")
		}
		if len(p.PaymentDetails.CardLast4) != 4 {
			return errors.New("Card last 4 digits are required.")
		}
		if p.PaymentDetails.CardExpiry == "" {
			return errors.New("Card expiry is required.")
		}
	}
	if p.PaymentMethod == entity.PaymentInstantTransfer {
		if p.PaymentDetails == nil {
			return errors.New("Instant transfer details are required.")
		}
		if p.PaymentDetails.BizumPhone == "" {
			return errors.New("Instant transfer phone is required.")
		}
	}
	if len(p.Items) == 0 {
		return errors.New("Order requires at least one item.")
	}
	for _, it := range p.Items {
		if it.FoodID == "" || it.Name == "" ||
			math.IsNaN(it.Price) || it.Price < 0 ||
			math.IsNaN(it.Quantity) || it.Quantity < 1 {
			return errors.New("Order items are invalid.")
		}
	}
	if math.IsNaN(p.Total) || p.Total < 0 {
		return errors.New("Total must be a valid number.")
	}
	return nil
}
