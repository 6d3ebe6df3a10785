package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/msto63/bologna/pkg/core/cache"
	"github.com/msto63/bologna/pkg/core/config"
	"github.com/msto63/bologna/pkg/core/health"
	"github.com/msto63/bologna/pkg/core/logging"
	"github.com/msto63/bologna/pkg/core/version"
)

const healthTimeout = 5 * time.Second

// Server is the websocket parse service
type Server struct {
	httpServer *http.Server
	handler    *WebSocketHandler
	results    *cache.Cache[json.RawMessage]
	logger     *logging.Logger
	address    string
}

// New creates a server from the application configuration
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.New("bologna-server")
	}

	opts, err := cfg.ParserOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = logger.Logger

	results := cache.New[json.RawMessage](cache.Config{
		MaxItems: cfg.Server.CacheEntries,
		TTL:      cfg.Server.CacheTTL.Duration,
	})

	registry := health.NewRegistry(cfg.General.Name, version.Bologna)
	registry.Register(health.ParserCheck("parser", opts))
	registry.RegisterFunc("cache", func(ctx context.Context) health.CheckResult {
		stats := results.Stats()
		return health.CheckResult{
			Name:   "cache",
			Status: health.StatusHealthy,
			Details: map[string]interface{}{
				"size":     stats.Size,
				"hits":     stats.Hits,
				"misses":   stats.Misses,
				"hit_rate": stats.HitRate,
			},
		}
	})

	ws := NewWebSocketHandler(HandlerConfig{
		Parser:      opts,
		ReadTimeout: cfg.Server.ReadTimeout.Duration,
		ReadLimit:   cfg.Server.MaxMessageBytes,
		Results:     results,
		Logger:      logger,
	})

	s := &Server{
		handler: ws,
		results: results,
		logger:  logger,
		address: cfg.ServerAddress(),
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", ws)
	mux.Handle("/health", registry.Handler(healthTimeout))

	s.httpServer = &http.Server{
		Addr:              s.address,
		Handler:           s.loggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP handler with every route registered
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// CacheStats returns the statistics of the parse result cache
func (s *Server) CacheStats() cache.Stats {
	return s.results.Stats()
}

// ListenAndServe serves until ctx is cancelled and then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("Starting Bologna parse service", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Stop(shutdownCtx)
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping Bologna parse service")
	return s.httpServer.Shutdown(ctx)
}

// loggingMiddleware logs every plain HTTP request; websocket upgrades are
// logged by the handler
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path != "/ws" {
			s.logger.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		}
	})
}
