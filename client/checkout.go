package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// State of the submission flow. Success is transient: a completed
// submission clears the cart, records the confirmation and lands back in
// Idle, ready for the next order. Failed sticks until the next attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateFailed
)

var (
	ErrEmptyCart      = errors.New("add dishes before confirming")
	ErrIncompleteForm = errors.New("complete the delivery details")
	ErrInFlight       = errors.New("a submission is already in flight")
)

const genericFailure = "Could not submit the order. Try again."

// CheckoutForm holds the delivery fields plus the chosen payment variant.
type CheckoutForm struct {
	CustomerName string
	Address      string
	Phone        string
	Email        string
	Payment      Payment
}

// Checkout drives one order submission at a time: guard the form, compose
// the payload from the cart, call the API, reconcile local state. On
// failure the cart and form are left untouched so the user can correct and
// retry; there is no automatic retry.
type Checkout struct {
	mu   sync.Mutex
	cart *CartStore
	api  *Client

	state        State
	Form         CheckoutForm
	confirmation string
	failure      string
}

func NewCheckout(cart *CartStore, api *Client) *Checkout {
	return &Checkout{cart: cart, api: api}
}

func (ck *Checkout) State() State { return ck.state }

// Confirmation is the success message of the last completed submission.
func (ck *Checkout) Confirmation() string { return ck.confirmation }

// Failure is the message of the last failed submission, empty otherwise.
func (ck *Checkout) Failure() string { return ck.failure }

// formIncomplete mirrors the server's §4.2 payment branching for immediate
// feedback; the server validator stays the authority.
func (ck *Checkout) formIncomplete() bool {
	f := &ck.Form
	if strings.TrimSpace(f.CustomerName) == "" ||
		strings.TrimSpace(f.Address) == "" ||
		strings.TrimSpace(f.Phone) == "" ||
		strings.TrimSpace(f.Email) == "" {
		return true
	}
	switch p := f.Payment.(type) {
	case CardPayment:
		return p.Holder == "" || p.Number == "" || p.Expiry == ""
	case BizumPayment:
		return p.Phone == ""
	case CashPayment:
		return false
	default:
		return true
	}
}

// Submit runs the whole flow once. Advisory guard errors (empty cart,
// incomplete form) return before any network call.
func (ck *Checkout) Submit(ctx context.Context) error {
	ck.mu.Lock()
	if ck.state == StateSubmitting {
		ck.mu.Unlock()
		return ErrInFlight
	}

	ck.confirmation = ""
	ck.failure = ""

	if ck.cart.Count() == 0 {
		ck.failure = "Add dishes before confirming."
		ck.mu.Unlock()
		return ErrEmptyCart
	}
	if ck.formIncomplete() {
		ck.failure = "Complete the delivery details."
		ck.mu.Unlock()
		return ErrIncompleteForm
	}

	ck.state = StateSubmitting
	payload := ck.composePayload()
	ck.mu.Unlock()

	order, err := ck.api.SubmitOrder(ctx, payload)

	ck.mu.Lock()
	defer ck.mu.Unlock()

	if err != nil {
		ck.state = StateFailed
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			ck.failure = apiErr.Message
		} else {
			ck.failure = genericFailure
		}
		return err
	}

	email := ck.Form.Email
	ck.cart.Clear()
	ck.Form = CheckoutForm{}
	ck.confirmation = fmt.Sprintf("Order %d submitted. Check your email (%s) for tracking.", order.ID, email)
	ck.state = StateIdle
	return nil
}

// composePayload snapshots the cart and form into the wire format. Payment
// details are omitted entirely for cash.
func (ck *Checkout) composePayload() *OrderPayload {
	lines := ck.cart.Lines()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			FoodID:   l.FoodID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: float64(l.Quantity),
		})
	}

	return &OrderPayload{
		CustomerName:   ck.Form.CustomerName,
		Address:        ck.Form.Address,
		Phone:          ck.Form.Phone,
		Email:          ck.Form.Email,
		PaymentMethod:  ck.Form.Payment.Method(),
		PaymentDetails: ck.Form.Payment.Details(),
		Items:          items,
		Total:          ck.cart.Total(),
	}
}
