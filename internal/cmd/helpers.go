package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/runger/finsearch/internal/config"
	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/storage"
)

// newLogger builds the process logger from the log section of the config.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), nil
}

// loadDataset resolves the record snapshot from the configured data source.
// An empty sqlite store is seeded with the demo data on first run.
func loadDataset(ctx context.Context, cfg *config.Config, store *storage.Store) (*records.Dataset, error) {
	if cfg.Widget.DataSource != "sqlite" {
		return storage.DemoDataset(), nil
	}
	if store == nil {
		return nil, fmt.Errorf("sqlite data source requires an open store")
	}

	if _, err := store.Seed(ctx, false); err != nil {
		return nil, err
	}
	return store.LoadDataset(ctx)
}
