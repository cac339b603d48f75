package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/zimbwa-construction/quotes-backend/api/routes"
	"github.com/zimbwa-construction/quotes-backend/internal/quotes"
	"github.com/zimbwa-construction/quotes-backend/pkg/config"
	"github.com/zimbwa-construction/quotes-backend/pkg/db"
	"github.com/zimbwa-construction/quotes-backend/pkg/db/models"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
	"github.com/zimbwa-construction/quotes-backend/pkg/metrics"
	"github.com/zimbwa-construction/quotes-backend/pkg/webhook"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "quotes-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "quotes-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	// The default store is in-memory sqlite, so the schema is rebuilt on
	// every boot.
	if err := dbClient.DB().AutoMigrate(&models.Quote{}, &models.QuoteService{}); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	relayClient, err := webhook.NewClient(
		cfg.Webhook.URL,
		webhook.WithTimeout(cfg.Webhook.Timeout),
		webhook.WithUserAgent(cfg.Webhook.UserAgent),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create webhook client", err)
		os.Exit(1)
	}

	m := metrics.New()

	quoteService, err := quotes.NewService(quotes.NewRepository(dbClient.DB()), relayClient, logg, m)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"webhook": relayClient.URL(),
	})
	logg.Info(ctx, "starting quotes api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, m, quoteService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
