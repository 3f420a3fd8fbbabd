package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	cartadapter "github.com/dwikikusuma/pharmacy-pos/internal/cart/infra/adapter"

	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/pharmacy-pos/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/pharmacy-pos/internal/gateway"
	reorderapp "github.com/dwikikusuma/pharmacy-pos/internal/reorder/app"

	"github.com/dwikikusuma/pharmacy-pos/pkg/config"
	"github.com/dwikikusuma/pharmacy-pos/pkg/logger"
	"github.com/dwikikusuma/pharmacy-pos/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "pos", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	itemRepo := memory.NewItemRepo()
	catalogSvc := catalogapp.NewService(itemRepo)

	if err := seedCatalog(ctx, catalogSvc); err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Cart
	cartSvc := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalogSvc))

	// Checkout (adapters)
	cartAccess := checkoutadapter.NewCartServiceAccess(cartSvc)
	catalogAccess := checkoutadapter.NewCatalogServiceAccess(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartAccess, catalogAccess, 10)

	// Reorder
	reorderSvc := reorderapp.NewService(catalogSvc)

	srv := gateway.NewServer(log, catalogSvc, cartSvc, checkoutSvc, reorderSvc)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
