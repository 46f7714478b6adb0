package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"crust-connect/internal/model"
)

type CartItemResponse struct {
	ID       int64           `json:"id"`
	Pizza    model.Pizza     `json:"pizza"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	ID         int64              `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

// Cart fetches the canonical server-side cart for the current session.
func (c *Client) Cart(ctx context.Context) (*CartResponse, error) {
	var out CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCartItem(ctx context.Context, pizzaID int64) (*CartResponse, error) {
	body := map[string]int64{"pizzaId": pizzaID}
	var out CartResponse
	if err := c.do(ctx, http.MethodPost, "/cart/items", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, pizzaID int64, quantity int) (*CartResponse, error) {
	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	var out CartResponse
	path := fmt.Sprintf("/cart/items/%d", pizzaID)
	if err := c.do(ctx, http.MethodPut, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, pizzaID int64) (*CartResponse, error) {
	var out CartResponse
	path := fmt.Sprintf("/cart/items/%d", pizzaID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}
