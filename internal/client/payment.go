package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         int64  `json:"orderId"`
}

// CreatePaymentIntent asks the payment collaborator (via the backend) for
// a charge attempt against the order. The returned client secret is opaque
// and goes straight to the hosted approval step.
func (c *Client) CreatePaymentIntent(ctx context.Context, orderID int64) (*PaymentIntentResponse, error) {
	query := url.Values{"orderId": []string{strconv.FormatInt(orderID, 10)}}
	var out PaymentIntentResponse
	if err := c.do(ctx, http.MethodPost, "/payment/create-intent", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
