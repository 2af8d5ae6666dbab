package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"furniture-storefront/internal/commerce"
	"furniture-storefront/internal/config"
	"furniture-storefront/internal/httpserver"
	addresssvc "furniture-storefront/internal/service/address"
	cartsvc "furniture-storefront/internal/service/cart"
	"furniture-storefront/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	sessions, closeSessions, err := buildSessionStore(cfg)
	if err != nil {
		logger.Fatalf("init session store: %v", err)
	}
	defer closeSessions()

	client := commerce.NewClient(cfg.CommerceAPIURL, logger)
	cartService := cartsvc.New(client, logger)
	addressService := addresssvc.New(client, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, sessions, httpserver.Deps{
		Carts:     cartService,
		Addresses: addressService,
		Commerce:  client,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (commerce api %s)", cfg.HTTPAddr, cfg.CommerceAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func buildSessionStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}
	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
