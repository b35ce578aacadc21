package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/config"
	"github.com/Rana718/arcadia/internal/database"
	"github.com/Rana718/arcadia/internal/loader"
	"github.com/Rana718/arcadia/internal/logger"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *zap.Logger {
	log, err := logger.New(logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		ServiceName: "arcadia",
	})
	if err != nil {
		color.Yellow("⚠️  Failed to build logger, logging disabled: %v", err)
		return zap.NewNop()
	}
	return log
}

// openAdapter connects to the configured database.
func openAdapter(ctx context.Context, cfg *config.Config) (database.Adapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return adapter, nil
}

// newLoader wires the loader to the store and cache the config asks for. Connection
// problems are logged and leave the loader on synthetic data. The returned func releases
// whatever was opened.
func newLoader(ctx context.Context, cfg *config.Config, log *zap.Logger) (*loader.Loader, func()) {
	var closers []func()
	opts := []loader.Option{loader.WithLogger(log)}

	if !cfg.Database.UseMockData {
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			log.Warn("backing store unavailable", zap.Error(err))
		} else {
			opts = append(opts, loader.WithStore(database.NewFetcher(adapter)))
			closers = append(closers, func() { adapter.Close() })
		}
	}

	if redisURL := cfg.GetRedisURL(); redisURL != "" {
		client, err := loader.NewRedisClient(ctx, redisURL)
		if err != nil {
			log.Warn("redis unavailable, using in-process cache", zap.Error(err))
		} else {
			opts = append(opts, loader.WithCache(loader.NewRedisCache(client, cfg.Cache.KeyPrefix)))
			closers = append(closers, func() { client.Close() })
		}
	}

	return loader.New(cfg, opts...), func() {
		for _, c := range closers {
			c()
		}
		log.Sync()
	}
}
