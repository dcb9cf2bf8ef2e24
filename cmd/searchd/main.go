package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/config"
	"github.com/connecthub/searchcore/internal/db"
	dbMemory "github.com/connecthub/searchcore/internal/db/memory"
	dbRedis "github.com/connecthub/searchcore/internal/db/redis"
	logpkg "github.com/connecthub/searchcore/internal/logger"
	"github.com/connecthub/searchcore/internal/metrics"
	historyrepo "github.com/connecthub/searchcore/internal/repository/history"
	"github.com/connecthub/searchcore/internal/repository/index"
	savedrepo "github.com/connecthub/searchcore/internal/repository/saved"
	chiTransport "github.com/connecthub/searchcore/internal/transport/chi"
	healthuc "github.com/connecthub/searchcore/internal/usecase/health"
	historyuc "github.com/connecthub/searchcore/internal/usecase/history"
	insightsuc "github.com/connecthub/searchcore/internal/usecase/insights"
	nearbyuc "github.com/connecthub/searchcore/internal/usecase/nearby"
	saveduc "github.com/connecthub/searchcore/internal/usecase/saved"
	searchuc "github.com/connecthub/searchcore/internal/usecase/search"
	suggestuc "github.com/connecthub/searchcore/internal/usecase/suggest"
	"github.com/connecthub/searchcore/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting searchcore API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create persistence store based on driver
	var store db.Store
	switch cfg.Database.Driver {
	case "memory":
		store = dbMemory.NewStore()
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create persistence store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Persistence store not ready", zap.Error(err))
	}
	logger.Info("Connected to persistence store")

	metrics.RegisterSearchMetrics()

	// Seed the index; timestamps in the demo dataset are relative to startup.
	idx := index.New(index.DefaultDataset(time.Now()))
	logger.Info("Index seeded", zap.Any("collections", idx.Counts()))

	// Repositories over the key-value store
	histStore := historyrepo.New(store, cfg.Storage.KeyPrefix, logger)
	savedStore := savedrepo.New(store, cfg.Storage.KeyPrefix, logger)

	// Use case services
	histSvc := historyuc.New(ctx, histStore)
	savedSvc := saveduc.New(ctx, savedStore)
	searchSvc := searchuc.New(idx, histSvc, logger)
	suggestSvc := suggestuc.New(idx, metrics.SuggestCacheTotal)
	nearbySvc := nearbyuc.New(idx)
	insightsSvc := insightsuc.New(histSvc, savedSvc, idx)
	healthSvc := healthuc.New(store, idx)

	server := chiTransport.NewServer(
		searchSvc, suggestSvc, nearbySvc, histSvc, savedSvc, insightsSvc, healthSvc, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// One canonical log line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
