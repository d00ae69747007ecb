package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// OrderItem is one cart line as it crosses the wire.
type OrderItem struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// OrderPayload is the checkout request body.
type OrderPayload struct {
	CustomerName   string          `json:"customerName"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	Items          []OrderItem     `json:"items"`
	Total          float64         `json:"total"`
}

// Order is the persisted record the server sends back.
type Order struct {
	ID             uint            `json:"ID"`
	CreatedAt      time.Time       `json:"CreatedAt"`
	UpdatedAt      time.Time       `json:"UpdatedAt"`
	CustomerName   string          `json:"customerName"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	Status         string          `json:"status"`
	Total          float64         `json:"total"`
	Items          []OrderItem     `json:"items"`
}

// APIError is a non-2xx answer from the server, carrying the single
// message the API attaches to every failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Client talks to the REST API. Every call is bounded by the HTTP client's
// timeout; there is no retry.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
}

// SubmitOrder posts a checkout payload and returns the stored order.
func (c *Client) SubmitOrder(ctx context.Context, payload *OrderPayload) (*Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(res)
	}

	var order Order
	if err := json.NewDecoder(res.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders fetches every order, most recent first.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/orders", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeAPIError(res)
	}

	var orders []Order
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func decodeAPIError(res *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil || body.Message == "" {
		body.Message = "unexpected response"
	}
	return &APIError{StatusCode: res.StatusCode, Message: body.Message}
}
