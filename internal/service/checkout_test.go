package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crust-connect/internal/client"
)

type stubApproval struct {
	ok  bool
	err error
	got *client.PaymentIntentResponse
}

func (s *stubApproval) Await(ctx context.Context, intent *client.PaymentIntentResponse) (bool, error) {
	s.got = intent
	return s.ok, s.err
}

func orderPayload() map[string]any {
	return map[string]any{
		"id":            99,
		"userId":        42,
		"items":         []any{},
		"totalAmount":   41.97,
		"orderStatus":   "PLACED",
		"paymentStatus": "PENDING",
		"createdAt":     "2025-06-01T12:00:00",
		"updatedAt":     "2025-06-01T12:00:00",
	}
}

func checkoutFixture(t *testing.T, backend *fakeBackend, approval PaymentApproval) (CheckoutService, CartService, *captureNotifier) {
	t.Helper()

	cart, notify := authenticatedCart(t, backend)
	api := cart.(*cartServiceImpl).api
	return NewCheckoutService(api, cart, approval, notify, discardLogger()), cart, notify
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, orderPayload())
	})
	backend.handle("POST /payment/create-intent", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "99", r.URL.Query().Get("orderId"))
		writeData(w, map[string]any{
			"clientSecret":    "cs_test_123",
			"paymentIntentId": "pi_123",
			"orderId":         99,
		})
	})
	backend.handle("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, cartPayload())
	})
	backend.handle("DELETE /cart", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	approval := &stubApproval{ok: true}
	checkout, cart, _ := checkoutFixture(t, backend, approval)
	cart.Refresh(context.Background())
	require.NotEmpty(t, cart.Items())

	order, paid := checkout.Checkout(context.Background())

	require.NotNil(t, order)
	assert.True(t, paid)
	assert.Equal(t, int64(99), order.ID)
	// the hosted step received the opaque secret untouched
	require.NotNil(t, approval.got)
	assert.Equal(t, "cs_test_123", approval.got.ClientSecret)
	// payment success empties the local mirror
	assert.Empty(t, cart.Items())
	assert.Equal(t, 1, backend.callCount("DELETE /cart"))
}

func TestCheckoutPaymentFailureKeepsOrder(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, orderPayload())
	})
	backend.handle("POST /payment/create-intent", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{
			"clientSecret":    "cs_test_123",
			"paymentIntentId": "pi_123",
			"orderId":         99,
		})
	})

	checkout, _, notify := checkoutFixture(t, backend, &stubApproval{ok: false})

	order, paid := checkout.Checkout(context.Background())

	require.NotNil(t, order)
	assert.False(t, paid)
	// no local clear: the user may retry against the kept order
	assert.Zero(t, backend.callCount("DELETE /cart"))
	assert.Contains(t, notify.titles, "Payment failed")
}

func TestCheckoutApprovalInterrupted(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, orderPayload())
	})
	backend.handle("POST /payment/create-intent", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{
			"clientSecret":    "cs_test_123",
			"paymentIntentId": "pi_123",
			"orderId":         99,
		})
	})

	checkout, _, notify := checkoutFixture(t, backend, &stubApproval{err: errors.New("ctx done")})

	order, paid := checkout.Checkout(context.Background())

	require.NotNil(t, order)
	assert.False(t, paid)
	assert.Contains(t, notify.titles, "Payment failed")
}

func TestCheckoutOrderCreationFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "Cart is empty")
	})

	checkout, _, notify := checkoutFixture(t, backend, &stubApproval{ok: true})

	order, paid := checkout.Checkout(context.Background())

	assert.Nil(t, order)
	assert.False(t, paid)
	assert.Contains(t, notify.messages, "Cart is empty")
}

func TestCheckoutIntentFailureKeepsOrder(t *testing.T) {
	backend := newFakeBackend(t)
	backend.handle("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, orderPayload())
	})
	backend.handle("POST /payment/create-intent", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadGateway, "Payment provider unavailable")
	})

	approval := &stubApproval{ok: true}
	checkout, _, notify := checkoutFixture(t, backend, approval)

	order, paid := checkout.Checkout(context.Background())

	require.NotNil(t, order)
	assert.False(t, paid)
	assert.Nil(t, approval.got)
	assert.Contains(t, notify.titles, "Payment setup failed")
}
