package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"crust-connect/internal/client"
	"crust-connect/internal/model"
)

// CartService mirrors the server-side cart. The mirror is never
// write-authoritative: every mutation calls the backend and then re-fetches
// the canonical cart, trading latency for correctness against server-side
// business rules the client cannot predict. Failed operations surface a
// notice and leave the mirror as the last successful refresh produced it.
type CartService interface {
	Items() []model.CartItem
	// TotalItems and TotalPrice are computed on every read so they cannot
	// drift from the item list.
	TotalItems() int
	TotalPrice() decimal.Decimal

	Refresh(ctx context.Context)
	Add(ctx context.Context, pizza model.Pizza)
	UpdateQuantity(ctx context.Context, pizzaID int64, quantity int)
	Remove(ctx context.Context, pizzaID int64)
	Clear(ctx context.Context)
}

type cartServiceImpl struct {
	api     *client.Client
	session SessionService
	notify  Notifier
	log     *slog.Logger

	items []model.CartItem
}

func NewCartService(api *client.Client, session SessionService, notify Notifier, log *slog.Logger) CartService {
	return &cartServiceImpl{
		api:     api,
		session: session,
		notify:  notify,
		log:     log,
	}
}

func (s *cartServiceImpl) Items() []model.CartItem {
	return s.items
}

func (s *cartServiceImpl) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *cartServiceImpl) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Pizza.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Refresh replaces the mirror with the canonical server cart. Anonymous
// sessions reset to empty without a network call; so does any fetch
// failure, rather than keeping stale items around.
func (s *cartServiceImpl) Refresh(ctx context.Context) {
	if _, ok := s.session.User(); !ok {
		s.items = nil
		return
	}

	cart, err := s.api.Cart(ctx)
	if err != nil {
		s.log.Debug("fetch cart", "error", err)
		s.items = nil
		return
	}

	items := make([]model.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, model.CartItem{Pizza: item.Pizza, Quantity: item.Quantity})
	}
	s.items = items
}

func (s *cartServiceImpl) Add(ctx context.Context, pizza model.Pizza) {
	if !s.requireSession() {
		return
	}

	if _, err := s.api.AddCartItem(ctx, pizza.ID); err != nil {
		s.notify.Notify("Error", client.Message(err))
		return
	}
	s.Refresh(ctx)
	s.notify.Notify("Added to cart", pizza.Name+" added to your cart.")
}

// UpdateQuantity ignores quantities below one: removal goes through Remove,
// never through quantity zero.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, pizzaID int64, quantity int) {
	if quantity < 1 {
		return
	}
	if !s.requireSession() {
		return
	}

	if _, err := s.api.UpdateCartItem(ctx, pizzaID, quantity); err != nil {
		s.notify.Notify("Error", client.Message(err))
		return
	}
	s.Refresh(ctx)
}

func (s *cartServiceImpl) Remove(ctx context.Context, pizzaID int64) {
	if !s.requireSession() {
		return
	}

	if _, err := s.api.RemoveCartItem(ctx, pizzaID); err != nil {
		s.notify.Notify("Error", client.Message(err))
		return
	}
	s.Refresh(ctx)
	s.notify.Notify("Removed", "Item removed from cart.")
}

// Clear skips the refresh on success: the intended end state is known.
func (s *cartServiceImpl) Clear(ctx context.Context) {
	if _, ok := s.session.User(); !ok {
		s.items = nil
		return
	}

	if err := s.api.ClearCart(ctx); err != nil {
		s.notify.Notify("Error", client.Message(err))
		return
	}
	s.items = nil
}

func (s *cartServiceImpl) requireSession() bool {
	if _, ok := s.session.User(); ok {
		return true
	}
	s.notify.Notify("Please log in", "You need to log in to change your cart.")
	return false
}
