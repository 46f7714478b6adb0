// Package server hosts the payment collaborator's approval step on a local
// listener during checkout. The checkout flow hands it a payment intent,
// the user completes (or abandons) the payment in the browser, and the
// completion callback reports the outcome back to the waiting flow.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"crust-connect/internal/client"
	"crust-connect/internal/config"
)

type ApprovalServer struct {
	echo *echo.Echo
	addr string
	log  *slog.Logger

	mu     sync.Mutex
	intent *client.PaymentIntentResponse
	result chan bool
}

func New(cfg config.ApprovalServer, log *slog.Logger) *ApprovalServer {
	s := &ApprovalServer{
		addr: cfg.Host + ":" + cfg.Port,
		log:  log,
	}
	s.echo = s.newEcho()
	return s
}

func (s *ApprovalServer) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/checkout", s.handleCheckout)
	e.GET("/checkout/complete", s.handleComplete)

	return e
}

// URL is where the user completes the payment.
func (s *ApprovalServer) URL() string {
	return fmt.Sprintf("http://%s/checkout", s.addr)
}

// Await serves the approval page for intent until the completion callback
// fires or ctx is done. The listener only runs for the duration of one
// payment attempt.
func (s *ApprovalServer) Await(ctx context.Context, intent *client.PaymentIntentResponse) (bool, error) {
	s.mu.Lock()
	s.intent = intent
	s.result = make(chan bool, 1)
	result := s.result
	// echo's embedded http.Server cannot serve again once closed, so
	// every attempt gets its own instance
	s.echo = s.newEcho()
	e := s.echo
	s.mu.Unlock()

	failed := make(chan error, 1)
	go func() {
		if err := e.Start(s.addr); err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()
	defer e.Close()

	s.log.Info("awaiting payment approval",
		"url", s.URL(), "payment_intent", intent.PaymentIntentID)

	select {
	case ok := <-result:
		return ok, nil
	case err := <-failed:
		// a bind failure must not leave checkout hanging
		return false, fmt.Errorf("approval server on %s: %w", s.addr, err)
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (s *ApprovalServer) handleCheckout(c echo.Context) error {
	s.mu.Lock()
	intent := s.intent
	s.mu.Unlock()

	if intent == nil {
		return c.HTML(http.StatusNotFound, "<p>No payment in progress.</p>")
	}

	page := fmt.Sprintf(checkoutPage,
		intent.OrderID, intent.ClientSecret,
		intent.PaymentIntentID, intent.PaymentIntentID)
	return c.HTML(http.StatusOK, page)
}

func (s *ApprovalServer) handleComplete(c echo.Context) error {
	intentID := c.QueryParam("payment_intent")
	status := c.QueryParam("status")

	s.mu.Lock()
	intent := s.intent
	result := s.result
	s.mu.Unlock()

	if intent == nil || intentID != intent.PaymentIntentID {
		return c.HTML(http.StatusBadRequest, "<p>Unknown payment intent.</p>")
	}

	ok := status == "succeeded"
	// the callback may be hit more than once; only the first outcome counts
	select {
	case result <- ok:
	default:
	}

	if ok {
		return c.HTML(http.StatusOK, "<p>Payment complete. You can return to the terminal.</p>")
	}
	return c.HTML(http.StatusOK, "<p>Payment not completed. You can return to the terminal and retry.</p>")
}

const checkoutPage = `<!DOCTYPE html>
<html>
<head><title>Crust Connect Checkout</title></head>
<body>
  <h1>Complete your payment</h1>
  <p>Order #%d</p>
  <div data-client-secret="%s"></div>
  <p>
    <a href="/checkout/complete?status=succeeded&amp;payment_intent=%s">Pay now</a> ·
    <a href="/checkout/complete?status=failed&amp;payment_intent=%s">Cancel payment</a>
  </p>
</body>
</html>`
