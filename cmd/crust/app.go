package main

import (
	"fmt"
	"log/slog"
	"os"

	"crust-connect/internal/client"
	"crust-connect/internal/config"
	"crust-connect/internal/logger"
	"crust-connect/internal/server"
	"crust-connect/internal/service"
	"crust-connect/internal/storage"
)

// app holds the wired-up services. Everything is dependency-injected from
// here; there are no package-level singletons.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	api      *client.Client
	session  service.SessionService
	cart     service.CartService
	approval *server.ApprovalServer
	checkout service.CheckoutService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log)

	store, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	notify := service.NotifierFunc(printNotice)

	api := client.New(cfg.API, store, log)
	session := service.NewSessionService(api, store, notify, log)
	// a 401 from any endpoint drops the in-memory identity too
	api.OnUnauthorized(session.Forget)

	cart := service.NewCartService(api, session, notify, log)
	approval := server.New(cfg.Approval, log)
	checkout := service.NewCheckoutService(api, cart, approval, notify, log)

	return &app{
		cfg:      cfg,
		log:      log,
		api:      api,
		session:  session,
		cart:     cart,
		approval: approval,
		checkout: checkout,
	}, nil
}

// printNotice renders store notices. Stderr, so piped output stays clean.
func printNotice(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
