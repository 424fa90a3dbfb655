package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/expenses-ledger/internal/clients/cache"
	"max.ks1230/expenses-ledger/internal/config"
	"max.ks1230/expenses-ledger/internal/logger"
	"max.ks1230/expenses-ledger/internal/model/storage"
	"max.ks1230/expenses-ledger/internal/server"
	"max.ks1230/expenses-ledger/internal/tracing"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so the tracer and the database are closed before
// the process exits.
func run() int {
	defer logger.Sync()
	logger.Info("Store init - start")

	conf, err := config.New()
	if err != nil {
		logger.Error("failed to init config", zap.Error(err))
		return 1
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Error("failed to init tracing", zap.Error(err))
		return 1
	}
	defer closer.Close()

	var store server.Storage
	switch conf.Server().Backend() {
	case config.BackendPostgres:
		db, dbErr := storage.NewPostgresStorage(conf.Postgres())
		if dbErr != nil {
			logger.Error("failed to init postgres", zap.Error(dbErr))
			return 1
		}
		defer db.Close()
		store = db
	default:
		store = storage.NewInMemStorage()
	}
	handlers := server.NewHandlers(store, summaryCache(conf.Memcached()))

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	api := server.New("api", conf.Server().Addr(), handlers.Routes())
	metrics := server.New("metrics", conf.Server().MetricsAddr(), metricsMux)

	logger.Info("Store init - end", zap.String("backend", conf.Server().Backend()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return api.Run(gCtx) })
	g.Go(func() error { return metrics.Run(gCtx) })

	if err = g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

// summaryCache returns nil when memcached is not configured or unreachable;
// summaries are then computed on every request.
func summaryCache(conf *config.MemcachedConfig) server.SummaryCache {
	if !conf.Enabled() {
		return nil
	}
	mc, err := cache.NewMemcache(conf)
	if err != nil {
		logger.Error("memcached unavailable, summary cache disabled", zap.Error(err))
		return nil
	}
	return mc
}
