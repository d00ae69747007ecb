// Package client is the Go client kit for the menjar-a-domicili API: an
// in-memory cart, the checkout flow and a thin HTTP client. It mirrors what
// the browser app keeps on its side of the wire.
package client

import "math"

const minQuantity = 1

// MenuItem is the client's view of one dish, as served by GET /api/foods.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
}

// CartLine is one aggregated, quantity-bearing entry: at most one line per
// dish, quantity always an integer >= 1.
type CartLine struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartStore holds the selected dishes until checkout. Total and Count are
// derived fresh on every call, never cached. Not safe for concurrent use;
// it models single-threaded UI state.
type CartStore struct {
	lines []CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart appends a new line with quantity 1, or bumps the quantity when
// the dish is already in the cart.
func (s *CartStore) AddToCart(item MenuItem) {
	for i := range s.lines {
		if s.lines[i].FoodID == item.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, CartLine{
		FoodID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// UpdateQuantity sets a line's quantity to max(1, floor(quantity)). Zero,
// negative and fractional requests are clamped, not rejected. No-op when
// the dish is not in the cart.
func (s *CartStore) UpdateQuantity(foodID string, quantity float64) {
	sanitized := int(math.Floor(quantity))
	if sanitized < minQuantity {
		sanitized = minQuantity
	}
	for i := range s.lines {
		if s.lines[i].FoodID == foodID {
			s.lines[i].Quantity = sanitized
			return
		}
	}
}

// RemoveItem deletes the line for a dish; no-op when absent.
func (s *CartStore) RemoveItem(foodID string) {
	for i := range s.lines {
		if s.lines[i].FoodID == foodID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.lines = nil
}

// Lines returns a copy; callers cannot mutate cart state through it.
func (s *CartStore) Lines() []CartLine {
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (s *CartStore) Count() int {
	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}
