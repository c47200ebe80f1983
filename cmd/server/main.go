package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/messaging"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var publisher services.LedgerEventPublisherInterface
	if cfg.Messaging.URL != "" {
		client, err := messaging.NewClient(cfg.Messaging.URL, cfg.Messaging.Exchange, cfg.Messaging.Queue)
		if err != nil {
			logger.Warn("ledger notifications disabled", "error", err)
		} else {
			defer client.Close()
			publisher = services.NewBreakingPublisher(client, services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()))
			logger.Info("ledger notifications enabled", "exchange", cfg.Messaging.Exchange)
		}
	}

	metrics := services.NewPrometheusMetrics(nil)
	ledger := services.NewLedgerService(store, publisher, metrics, logger)
	if err := ledger.Load(ctx); err != nil {
		return err
	}

	dashboard := services.NewDashboardService(ledger, services.NewChartBuilder(services.RandomColor), metrics)
	preferences := services.NewPreferenceService(store, metrics)

	routes := server.Handlers{
		Ledger:      handlers.NewLedgerHandler(ledger),
		Dashboard:   handlers.NewDashboardHandler(dashboard),
		Preferences: handlers.NewPreferenceHandler(preferences),
		Health:      handlers.NewHealthCheckHandler(store, cfg.Storage.Backend),
	}
	if cfg.IsDevelopment() {
		routes.Dev = handlers.NewDevHandler(ledger, services.NewDemoDataGenerator(0))
	}

	router := server.NewRouter(ctx, cfg, routes, logger)

	srv := &http.Server{
		Addr:           net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 16,
	}

	servers := []*http.Server{srv}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(net.JoinHostPort(cfg.Server.Host, cfg.Metrics.Port)))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			logger.Info("listening", "addr", s.Addr)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", "addr", s.Addr, "error", err)
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		return shutdownErr
	})

	return g.Wait()
}

// openStore selects the key-value backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.KeyValueStoreInterface, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("initialized SQL backend", "backend", cfg.Storage.Backend, "dialect", db.Dialect())
		return repositories.NewLedgerStateRepository(db.DB), func() { db.Close() }, nil
	case config.StorageBackendRedis:
		client, err := database.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("initialized redis backend", "backend", cfg.Storage.Backend)
		return repositories.NewRedisStateRepository(client, cfg.Redis.KeyPrefix), func() { client.Close() }, nil
	default:
		logger.Info("initialized memory backend", "backend", cfg.Storage.Backend)
		return repositories.NewMemoryStateRepository(), func() {}, nil
	}
}
