package service

import (
	"context"
	"log/slog"

	"crust-connect/internal/client"
)

// PaymentApproval hosts the payment collaborator's approval step for one
// intent and reports the outcome.
type PaymentApproval interface {
	Await(ctx context.Context, intent *client.PaymentIntentResponse) (bool, error)
}

// CheckoutService drives order placement: the server converts the cart to
// an order, the payment collaborator issues an intent, and the approval
// step decides the outcome. The created order persists server-side whatever
// the payment result; reconciling abandoned unpaid orders is the backend's
// problem.
type CheckoutService interface {
	// Checkout returns the created order (nil if creation itself failed)
	// and whether payment succeeded.
	Checkout(ctx context.Context) (*client.OrderResponse, bool)
}

type checkoutServiceImpl struct {
	api      *client.Client
	cart     CartService
	approval PaymentApproval
	notify   Notifier
	log      *slog.Logger
}

func NewCheckoutService(api *client.Client, cart CartService, approval PaymentApproval, notify Notifier, log *slog.Logger) CheckoutService {
	return &checkoutServiceImpl{
		api:      api,
		cart:     cart,
		approval: approval,
		notify:   notify,
		log:      log,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context) (*client.OrderResponse, bool) {
	order, err := s.api.CreateOrder(ctx)
	if err != nil {
		s.notify.Notify("Checkout failed", client.Message(err))
		return nil, false
	}
	s.log.Info("order created", "order_id", order.ID, "total", order.TotalAmount)

	intent, err := s.api.CreatePaymentIntent(ctx, order.ID)
	if err != nil {
		// the order stays on the server; the user may retry payment
		s.notify.Notify("Payment setup failed", client.Message(err))
		return order, false
	}

	ok, err := s.approval.Await(ctx, intent)
	if err != nil {
		s.notify.Notify("Payment failed", "The payment step was interrupted. Your order is kept, you can retry.")
		return order, false
	}
	if !ok {
		s.notify.Notify("Payment failed", "The payment was not completed. Your order is kept, you can retry.")
		return order, false
	}

	s.cart.Clear(ctx)
	s.notify.Notify("Payment successful", "Thank you! Your order is on its way.")
	return order, true
}
