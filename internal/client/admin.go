package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"crust-connect/internal/model"
)

// OrderPage mirrors the backend's paged admin listing.
type OrderPage struct {
	Content       []OrderResponse `json:"content"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

// AdminOrders lists every customer's orders, paged, optionally filtered by
// status ("" means all).
func (c *Client) AdminOrders(ctx context.Context, page, size int, status model.OrderStatus) (*OrderPage, error) {
	query := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	if status != "" {
		query.Set("status", string(status))
	}

	var out OrderPage
	if err := c.do(ctx, http.MethodGet, "/admin/orders", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order along its lifecycle. The backend
// validates the transition.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*OrderResponse, error) {
	query := url.Values{"status": []string{string(status)}}
	var out OrderResponse
	path := fmt.Sprintf("/admin/orders/%d/status", id)
	if err := c.do(ctx, http.MethodPut, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
