package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"employee-tracker/config"
	"employee-tracker/internal/app/service"
	"employee-tracker/internal/logging"
	"employee-tracker/internal/repository/sqlstore"
	"employee-tracker/pkg/workerpool"
)

type flags struct {
	envFile    string
	configFile string
	noSeed     bool
	accessible bool
}

// app holds everything that lives for the whole session.
type app struct {
	cfg     *config.Config
	store   *sqlstore.Store
	pool    *workerpool.WorkerPool
	gateway *service.Gateway
}

// openApp connects, applies the schema and seeds. Connection and schema
// failures are returned; seed failures are only logged.
func openApp(ctx context.Context, f flags) (*app, error) {
	cfg, err := config.LoadConfig(config.Options{EnvFile: f.envFile, YAMLFile: f.configFile})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logging.Init(os.Stderr, cfg.LogLevel)

	dialect, err := sqlstore.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	store, err := sqlstore.Open(ctx, dialect, cfg.DSN(), cfg.ConnectionLimit)
	if err != nil {
		return nil, fmt.Errorf("connecting to the database: %w", err)
	}
	slog.Info("connected", "driver", dialect.Name)

	if err := sqlstore.ApplySchema(ctx, store.DB, dialect, cfg.SchemaFile); err != nil {
		_ = store.Close()
		return nil, err
	}
	slog.Info("schema applied")

	if !f.noSeed {
		if _, err := sqlstore.Seed(ctx, store.DB, dialect, cfg.SeedFile); err != nil {
			slog.Error("seeding database", "error", err)
		}
	}

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.Workers)
	gateway := service.NewGateway(store.Departments(), store.Roles(), store.Employees(), service.NewAsyncService(pool))

	return &app{cfg: cfg, store: store, pool: pool, gateway: gateway}, nil
}

func (a *app) Close() {
	a.pool.Close()
	if err := a.store.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}
