package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/atu-cloudnative/catalog-service/internal/api"
	"github.com/atu-cloudnative/catalog-service/internal/config"
	"github.com/atu-cloudnative/catalog-service/internal/metrics"
	"github.com/atu-cloudnative/catalog-service/internal/ratelimiter"
	"github.com/atu-cloudnative/catalog-service/internal/service"
	"github.com/atu-cloudnative/catalog-service/internal/sysinfo"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	resolver := sysinfo.New(cfg.HostnameLookupTimeout)
	svc := service.NewCatalogService(resolver, m.LookupFailureHook())
	limiter := ratelimiter.New(cfg.RateLimit, cfg.RateLimitBurst)

	// Surface a broken hostname setup at boot rather than on the first probe.
	if info, err := resolver.Lookup(context.Background()); err != nil {
		logger.Warn("local hostname does not resolve; /health will fail", zap.Error(err))
	} else {
		logger.Info("host detected",
			zap.String("hostname", info.Hostname),
			zap.String("os", info.OSName),
		)
	}

	// ---- HTTP server ----
	router := api.NewRouter(svc, limiter, reg, m, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.Bool("rate_limited", limiter.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
