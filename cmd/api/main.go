package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digitalstore/internal/config"
	"digitalstore/internal/httpserver"
	"digitalstore/internal/mailer"
	"digitalstore/internal/payment"
	orderrepo "digitalstore/internal/repository/order"
	productrepo "digitalstore/internal/repository/product"
	catalogsvc "digitalstore/internal/service/catalog"
	checkoutsvc "digitalstore/internal/service/checkout"
	"digitalstore/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	// The store connects lazily on first use; the server must boot even when
	// the database is down.
	st := store.New(cfg.MongoURL, cfg.DatabaseName, logger)

	productRepo := productrepo.NewMongo(st, logger)
	orderRepo := orderrepo.NewMongo(st, logger)
	catalogService := catalogsvc.New(productRepo)
	checkoutService := checkoutsvc.New(orderRepo)

	mailerClient := mailer.New(mailer.Config{
		APIKey:        cfg.BeehiivAPIKey,
		PublicationID: cfg.BeehiivPublicationID,
		Timeout:       cfg.ProviderTimeout,
	}, logger)
	paymentClient := payment.New(payment.Config{
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
		Timeout:   cfg.ProviderTimeout,
	}, logger)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := productRepo.EnsureIndexes(idxCtx); err != nil {
		logger.Printf("slug index bootstrap skipped: %v", err)
	}
	idxCancel()

	srv := httpserver.New(cfg.HTTPAddr, logger, st, httpserver.Deps{
		Catalog:  catalogService,
		Checkout: checkoutService,
		Mailer:   mailerClient,
		Payments: paymentClient,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
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

	if err := st.Close(ctx); err != nil {
		logger.Printf("store close failed: %v", err)
	}
}
