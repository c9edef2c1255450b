package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/oceanlink/bulkcart-backend/api/routes"
	cartsvc "github.com/oceanlink/bulkcart-backend/internal/cart"
	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	checkoutsvc "github.com/oceanlink/bulkcart-backend/internal/checkout"
	"github.com/oceanlink/bulkcart-backend/pkg/config"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/redis"
)

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

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cat, err := catalog.Load(catalog.Config{
		Path:           cfg.Catalog.Path,
		DefaultMOQ:     cfg.Checkout.DefaultMOQ,
		DefaultMOQUnit: cfg.Checkout.DefaultMOQUnit,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	gate := checkoutsvc.Gate{
		DefaultMOQ:     cfg.Checkout.DefaultMOQ,
		DefaultMOQUnit: cfg.Checkout.DefaultMOQUnit,
	}

	checkoutService, err := checkoutsvc.NewService(
		gate,
		&http.Client{Timeout: cfg.Checkout.InvoiceTimeout},
		cfg.Checkout.InvoiceURL,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

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
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			Redis:           redisClient,
			Catalog:         cat,
			CartPersister:   cartsvc.NewRedisPersister(redisClient, cfg.Cart.TTL),
			CheckoutService: checkoutService,
			Gate:            gate,
			Registry:        registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
