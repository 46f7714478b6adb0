package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"crust-connect/internal/model"
)

type OrderItemResponse struct {
	ID       int64           `json:"id"`
	Pizza    model.Pizza     `json:"pizza"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderResponse is immutable once placed; status transitions are
// server-authoritative. Timestamps stay as the backend's local-datetime
// strings since they are only rendered, never computed on.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	OrderStatus     model.OrderStatus   `json:"orderStatus"`
	PaymentStatus   model.PaymentStatus `json:"paymentStatus"`
	PaymentIntentID string              `json:"paymentIntentId,omitempty"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
}

// CreateOrder converts the server-side cart into a new order.
func (c *Client) CreateOrder(ctx context.Context) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context) ([]OrderResponse, error) {
	var out []OrderResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
