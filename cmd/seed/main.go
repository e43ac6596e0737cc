// Command seed imports a catalog file into Postgres. Items whose value
// changed get a new history point.
//
//	go run ./cmd/seed -file configs/catalog.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tradevalues/internal/config"
	"tradevalues/internal/infrastructure/catalogfile"
	"tradevalues/internal/infrastructure/persistence"
	"tradevalues/pkg/application/connectors"
	"tradevalues/pkg/logx"
)

func main() {
	file := flag.String("file", "configs/catalog.yaml", "catalog file to import")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *file); err != nil {
		slog.Error("seed failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, file string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel, cfg.App.LogFormat)
	slog.SetDefault(log)

	if cfg.App.Storage != config.StoragePostgres {
		return fmt.Errorf("seed needs STORAGE=%s, got %q", config.StoragePostgres, cfg.App.Storage)
	}

	c, err := catalogfile.LoadFile(file)
	if err != nil {
		return fmt.Errorf("catalogfile.LoadFile: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	stats, err := catalogfile.Import(ctx, persistence.NewCatalogRepository(db), c, nil)
	if err != nil {
		return fmt.Errorf("catalogfile.Import: %w", err)
	}

	log.Info("seed finished",
		slog.String(logx.FieldFile, file),
		slog.Int("games", stats.Games),
		slog.Int("items", stats.Items),
		slog.Int("value-changes", stats.ValueChanges),
	)

	return nil
}
