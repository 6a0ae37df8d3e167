package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/config"
	"github.com/kailas-cloud/wainnrooh/internal/db"
	dbMemory "github.com/kailas-cloud/wainnrooh/internal/db/memory"
	dbRedis "github.com/kailas-cloud/wainnrooh/internal/db/redis"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/wainnrooh/internal/logger"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
	"github.com/kailas-cloud/wainnrooh/internal/repository/budget"
	catalogrepo "github.com/kailas-cloud/wainnrooh/internal/repository/catalog"
	"github.com/kailas-cloud/wainnrooh/internal/repository/replycache"
	chiTransport "github.com/kailas-cloud/wainnrooh/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/wainnrooh/internal/transport/openai"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/wainnrooh/internal/usecase/health"
	intentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/intent"
	recentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/recent"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
	"github.com/kailas-cloud/wainnrooh/internal/version"
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

	logger.Info("Starting wainnrooh API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("catalog", cfg.Catalog.Path),
	)

	store, err := newStore(cfg.Store)
	if err != nil {
		logger.Fatal("Failed to create store", zap.Error(err))
	}
	defer store.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Store.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Store not ready", zap.Error(err))
	}
	logger.Info("Connected to store")

	metrics.RegisterSearchMetrics()

	// Catalog snapshot. The server starts even if the first load fails:
	// /health reports it and POST /catalog/reload can recover.
	catalogSvc := catalogUC.New(catalogrepo.NewFileLoader(cfg.Catalog.Path))
	if _, err := catalogSvc.Reload(ctx); err != nil {
		logger.Error("Initial catalog load failed", zap.Error(err))
	}

	recentSvc := recentUC.New(store, cfg.Store.KeyPrefix, cfg.Search.RecentCapacity)
	searchSvc := searchUC.New(catalogSvc, recentSvc)
	intentSvc := intentUC.New(catalogSvc, buildPhraser(cfg, store, logger))
	healthSvc := healthUC.New(store, catalogSvc, cfg.Assistant.Enabled())

	server := chiTransport.NewServer(catalogSvc, searchSvc, intentSvc, recentSvc, healthSvc, chiTransport.Options{
		Limits: request.Limits{
			DefaultLimit:   cfg.Search.DefaultLimit,
			MaxLimit:       cfg.Search.MaxLimit,
			MaxQueryLength: cfg.Search.MaxQueryLength,
		},
		SuggestLimit: cfg.Search.SuggestLimit,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown; SIGHUP reloads the catalog in place.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

wait:
	for {
		select {
		case <-hup:
			if _, err := catalogSvc.Reload(ctx); err != nil {
				logger.Error("Catalog reload failed", zap.Error(err))
			}
		case <-quit:
			break wait
		}
	}
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the key-value store for the configured driver.
// Valkey speaks the Redis protocol and shares the rueidis store.
func newStore(cfg config.StoreConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return dbMemory.NewStore(), nil
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:        cfg.Addrs,
			Password:     cfg.Password,
			DB:           cfg.DB,
			ClientName:   "wainnrooh-" + cfg.Driver,
			WriteTimeout: time.Duration(cfg.WriteTimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, fmt.Errorf("%s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// buildPhraser assembles the decorator chain: OpenAI -> Budgeted -> Cached.
// Returns nil when no assistant is configured, so Ask keeps the rule-based reply.
func buildPhraser(cfg config.Config, store db.Store, logger *zap.Logger) intentUC.Phraser {
	if !cfg.Assistant.Enabled() {
		return nil
	}

	base := openaiTransport.NewPhraser(&openaiTransport.Config{
		APIKey:      cfg.Assistant.APIKey,
		BaseURL:     cfg.Assistant.BaseURL,
		Model:       cfg.Assistant.Model,
		Temperature: 0.4,
		Timeout:     cfg.Assistant.Timeout(),
		Logger:      logger,
	})
	logger.Info("Assistant phrasing enabled", zap.String("model", cfg.Assistant.Model))

	var phraser intentUC.Phraser = base
	if cfg.Assistant.DailyLimit > 0 || cfg.Assistant.MonthlyLimit > 0 {
		budgetStore := budget.New(store, 48*time.Hour, 62*24*time.Hour)
		budgeted := intentUC.NewBudgetedPhraser(base, budgetStore, cfg.Store.KeyPrefix,
			cfg.Assistant.DailyLimit, cfg.Assistant.MonthlyLimit, logger)
		budgeted.Load(context.Background())
		phraser = budgeted
	}

	return replycache.New(phraser, store, cfg.Store.KeyPrefix, cfg.Assistant.CacheTTL(),
		metrics.AssistantCacheTotal, logger)
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
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorResponseCodeInternalError,
						Message: "internal error",
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
			ctx = logpkg.WithClientID(ctx, strings.TrimSpace(r.Header.Get(chiTransport.ClientIDHeader)))

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("client_id", r.Header.Get(chiTransport.ClientIDHeader)),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
