package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/kanzcollective/storefront-backend/api/controllers"
	"github.com/kanzcollective/storefront-backend/api/routes"
	"github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/internal/catalog"
	"github.com/kanzcollective/storefront-backend/internal/checkout"
	"github.com/kanzcollective/storefront-backend/internal/orders"
	"github.com/kanzcollective/storefront-backend/pkg/config"
	"github.com/kanzcollective/storefront-backend/pkg/db"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
	"github.com/kanzcollective/storefront-backend/pkg/metrics"
	"github.com/kanzcollective/storefront-backend/pkg/migrate"
	"github.com/kanzcollective/storefront-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	defer func() {
		closeErr := multierr.Append(dbClient.Close(), redisClient.Close())
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	if cfg.Catalog.SeedOnBoot {
		seeded, err := catalog.SeedIfEmpty(context.Background(), catalogRepo)
		if err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
		if seeded {
			logg.Info(context.Background(), "catalog seeded")
		}
	}

	catalogService, err := catalog.NewService(catalogRepo, cfg.Catalog.FetchDelay)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, cfg.Cart.SlotTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStore, catalogService, cfg.Cart.MaxSessions, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	fees, err := checkout.NewFees(cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to parse checkout fees", err)
		os.Exit(1)
	}

	orderService := orders.NewService(cfg.Checkout.ProcessingDelay)

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			map[string]controllers.Pinger{
				"postgres": dbClient,
				"redis":    redisClient,
			},
			catalogService,
			cartService,
			orderService,
			fees,
			checkoutMetrics,
			registry,
		),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	logg.Info(ctx, "api server stopped")
}
