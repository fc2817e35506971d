package main

import (
	"context"
	"os"

	"github.com/favstore/wishlist-backend/internal/catalog"
	"github.com/favstore/wishlist-backend/pkg/config"
	"github.com/favstore/wishlist-backend/pkg/db"
	"github.com/favstore/wishlist-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "ingest"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "ingest",
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

	client, err := catalog.NewClient(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	ingestor, err := catalog.NewIngestor(catalog.IngestorParams{
		DB:      dbClient,
		Fetcher: client,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create ingestor", err)
		os.Exit(1)
	}

	ctx := logg.WithField(context.Background(), "catalog_url", cfg.Catalog.BaseURL)
	logg.Info(ctx, "starting catalog ingest")

	total, err := ingestor.Run(ctx)
	if err != nil {
		logg.Error(ctx, "catalog ingest failed", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "total", total)
	logg.Info(ctx, "catalog ingest finished")
}
