// Package app wires the cache backend, HTTP API and metrics into a
// runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	cache "github.com/goforj/flexcache"
	_ "github.com/goforj/flexcache/docs"
	"github.com/goforj/flexcache/internal/config"
	"github.com/goforj/flexcache/internal/httpapi"
	"github.com/goforj/flexcache/internal/logging"
	"github.com/goforj/flexcache/internal/metrics"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// App is a configured service instance.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	backend *cache.Backend
	cache   *cache.Cache[string]
	metrics *metrics.Collector
	server  *http.Server
}

// New selects the cache backend once and builds the HTTP server around it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	collector := metrics.NewCollector()
	backend := cache.Open(ctx, cfg.RedisConnectionString,
		cache.WithPrefix(cfg.CachePrefix),
		cache.WithDefaultTTL(cfg.CacheDefaultTTL),
		cache.WithConnectTimeout(cfg.RedisConnectTimeout),
		cache.WithLogger(logger.Named("backend")),
		cache.WithObserver(cache.Observers(collector, logging.CacheObserver(logger))),
	)
	collector.SetBackend(backend.Driver())

	a := &App{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		cache:   cache.New[string](backend),
		metrics: collector,
	}
	a.server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

func (a *App) routes() http.Handler {
	router := mux.NewRouter()
	router.Use(httpapi.RequestLogger(a.logger.Named("http")))

	httpapi.New(a.cache, a.cfg.CacheEntryTTL, a.logger).Routes(router)
	router.Handle("/metrics", a.metrics.Handler()).Methods(http.MethodGet)
	if a.cfg.SwaggerEnabled {
		router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	}
	return router
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Backend returns the backend chosen at startup.
func (a *App) Backend() *cache.Backend {
	return a.backend
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// releases the backend.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.HTTPAddr)
	if err != nil {
		_ = a.Close()
		return fmt.Errorf("listen on %s: %w", a.cfg.HTTPAddr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	a.logger.Info("http server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("driver", string(a.backend.Driver())),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		_ = a.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	if cerr := a.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Close releases the backend connection.
func (a *App) Close() error {
	return a.backend.Close()
}
