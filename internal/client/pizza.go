package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"crust-connect/internal/model"
)

// PizzaRequest is the admin create/update payload.
type PizzaRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    model.Category  `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}

func (c *Client) Pizzas(ctx context.Context) ([]model.Pizza, error) {
	var out []model.Pizza
	if err := c.do(ctx, http.MethodGet, "/pizzas", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Pizza(ctx context.Context, id int64) (*model.Pizza, error) {
	var out model.Pizza
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pizzas/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePizza is admin-only; the backend rejects customer credentials.
func (c *Client) CreatePizza(ctx context.Context, req PizzaRequest) (*model.Pizza, error) {
	var out model.Pizza
	if err := c.do(ctx, http.MethodPost, "/pizzas", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePizza(ctx context.Context, id int64, req PizzaRequest) (*model.Pizza, error) {
	var out model.Pizza
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pizzas/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePizza(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pizzas/%d", id), nil, nil, nil)
}
