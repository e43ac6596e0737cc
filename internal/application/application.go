package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"tradevalues/internal/config"
	"tradevalues/internal/domain/service/alert"
	"tradevalues/internal/domain/service/catalog"
	"tradevalues/internal/domain/service/inventory"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/infrastructure/catalogfile"
	"tradevalues/internal/infrastructure/dedupe"
	"tradevalues/internal/infrastructure/memory"
	"tradevalues/internal/infrastructure/metrics"
	"tradevalues/internal/infrastructure/notifier"
	"tradevalues/internal/infrastructure/persistence"
	"tradevalues/internal/server"
	"tradevalues/internal/transport/bot"
	"tradevalues/internal/transport/bot/handler"
	"tradevalues/internal/worker"
	"tradevalues/pkg/application/connectors"
	"tradevalues/pkg/application/modules"
	"tradevalues/pkg/contextx"
	"tradevalues/pkg/httpx"
	"tradevalues/pkg/logx"
	"tradevalues/pkg/middlewarex"
	"tradevalues/pkg/probe"
)

type repositories struct {
	catalog catalog.Repository
	// catalogFile receives catalog file imports.
	catalogFile catalogfile.Store
	trades      voting.TradeRepository
	alerts      alert.Repository
	inventory   inventory.Repository
}

// Run wires the service and blocks until ctx is cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	checks := make(map[string]probe.Check)

	// 1. Storage
	var (
		repos   repositories
		watcher *catalogfile.Watcher
	)

	switch cfg.App.Storage {
	case config.StoragePostgres:
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		db := pg.Client(ctx)
		defer pg.Close(ctx)

		checks["postgres"] = pg.Ping

		catalogRepo := persistence.NewCatalogRepository(db)

		repos = repositories{
			catalog:     catalogRepo,
			catalogFile: catalogRepo,
			trades:      persistence.NewTradeRepository(db),
			alerts:      persistence.NewAlertRepository(db),
			inventory:   persistence.NewInventoryRepository(db),
		}
	case config.StorageMemory:
		store := memory.NewCatalogStore()

		if _, err := importCatalog(ctx, store, cfg.Catalog.File); err != nil {
			return err
		}

		repos = repositories{
			catalog:     store,
			catalogFile: store,
			trades:      memory.NewTradeStore(),
			alerts:      memory.NewAlertStore(),
			inventory:   memory.NewInventoryStore(),
		}

		if cfg.Catalog.Watch && cfg.Catalog.File != "" {
			watcher = catalogfile.NewWatcher(cfg.Catalog.File, store, cfg.Catalog.WatchDelay)
		}
	}

	// 2. Redis (optional): alert dedupe and the asynq queue
	var (
		rds     *connectors.Redis
		deduper alert.Deduper = dedupe.NewLocal()
	)

	if cfg.Redis.Enabled() {
		rds = &connectors.Redis{
			Address:        cfg.Redis.Addr,
			Username:       cfg.Redis.Username,
			Password:       cfg.Redis.Password,
			DatabaseNumber: cfg.Redis.DB,
		}
		defer rds.Close(ctx)

		deduper = dedupe.NewRedis(rds.Client(ctx))
		checks["redis"] = rds.Ping
	}

	// 3. Notifier
	alertNotifier, err := newNotifier(cfg)
	if err != nil {
		return err
	}

	// 4. Services
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder := metrics.NewRecorder(registry)

	catalogService := catalog.NewService(repos.catalog, cfg.Catalog.CacheTTL)
	if watcher != nil {
		watcher.OnImport(func(catalogfile.Stats) { catalogService.Invalidate() })
	}

	valuationService := valuation.NewService(catalogService, recorder)
	votingService := voting.NewService(repos.trades, catalogService, recorder, voting.Config{
		MaxAttempts: cfg.Voting.MaxAttempts,
		Backoff:     cfg.Voting.Backoff,
	})
	alertService := alert.NewService(repos.alerts, catalogService, alertNotifier, deduper, recorder)
	inventoryService := inventory.NewService(repos.inventory, catalogService)

	// 5. Modules
	g, ctx := errgroup.WithContext(ctx)

	srv := server.NewServer(
		server.NewCatalogServer(catalogService),
		server.NewCalculatorServer(valuationService),
		server.NewTradeServer(votingService),
		server.NewInventoryServer(inventoryService),
		server.NewAlertServer(alertService),
	)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           newRouter(srv, cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	scanner := worker.NewAlertScanner(alertService, cfg.Alerts.CheckInterval)

	if rds != nil {
		modules.AsynqServer{
			Redis:       rds.AsynqOpt(),
			Concurrency: cfg.Alerts.Concurrency,
		}.Run(ctx, g, modules.AsynqQueues{worker.QueueAlerts: 1}, scanner.Handler())

		if err = (modules.AsynqScheduler{Redis: rds.AsynqOpt()}).Run(ctx, g, scanner.PeriodicTask()); err != nil {
			return fmt.Errorf("asynqScheduler.Run: %w", err)
		}
	} else {
		g.Go(func() error {
			return scanner.Run(ctx)
		})
	}

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	if cfg.Bot.Enabled() && cfg.Bot.Commands {
		commands, err := newCommandBot(cfg, catalogService, valuationService, repos.catalogFile)
		if err != nil {
			return err
		}

		g.Go(func() error {
			return commands.Run(ctx)
		})
	}

	logger(ctx).Info("application started", slog.String("storage", string(cfg.App.Storage)))

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

func newRouter(srv server.Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.UserID,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	srv.RegisterRoutes(r)

	return r
}

func newNotifier(cfg config.Config) (alert.Notifier, error) {
	if !cfg.Bot.Enabled() {
		return notifier.NewLog(), nil
	}

	client := httpx.NewClient(
		cfg.Bot.Timeout,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
	)

	tgBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID, client)
	if err != nil {
		return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	return tgBot, nil
}

func newCommandBot(
	cfg config.Config,
	catalogService *catalog.Service,
	valuationService *valuation.Service,
	store catalogfile.Store,
) (*bot.Bot, error) {
	tg, err := telego.NewBot(cfg.Bot.Token, telego.WithDiscardLogger())
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	var reload handler.Reloader

	if cfg.Catalog.File != "" {
		reload = func(ctx context.Context) (int, error) {
			stats, err := importCatalog(ctx, store, cfg.Catalog.File)
			if err != nil {
				return 0, err
			}

			catalogService.Invalidate()

			return stats.ValueChanges, nil
		}
	}

	return bot.New(tg, handler.New(catalogService, valuationService, reload), cfg.Bot.AdminID), nil
}

func importCatalog(ctx context.Context, store catalogfile.Store, path string) (catalogfile.Stats, error) {
	if path == "" {
		logger(ctx).Warn("memory storage without CATALOG_FILE, catalog is empty")

		return catalogfile.Stats{}, nil
	}

	c, err := catalogfile.LoadFile(path)
	if err != nil {
		return catalogfile.Stats{}, fmt.Errorf("catalogfile.LoadFile: %w", err)
	}

	stats, err := catalogfile.Import(ctx, store, c, nil)
	if err != nil {
		return catalogfile.Stats{}, fmt.Errorf("catalogfile.Import: %w", err)
	}

	return stats, nil
}
