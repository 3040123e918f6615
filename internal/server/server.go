package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/alesr/pricewatch/internal/listing"
	"github.com/alesr/pricewatch/internal/server/middleware"
)

const SearchPath = "/api/search"

// Searcher produces the listing envelope served on SearchPath.
type Searcher interface {
	FetchListings(ctx context.Context) listing.Envelope
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	// RateLimit is the number of requests per minute allowed per client IP
	// on the API routes. Zero disables limiting.
	RateLimit int
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     []string{"*"},
		RateLimit:       120,
	}
}

type Server struct {
	cfg      Config
	searcher Searcher
	logger   *zap.Logger
	router   chi.Router
}

func New(cfg Config, searcher Searcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, searcher: searcher, logger: logger}
	s.setupRouter()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(chimw.Compress(5))

	r.Get("/healthz", s.handleHealthz)

	r.Group(func(r chi.Router) {
		if s.cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.cfg.RateLimit, time.Minute))
		}
		r.Get(SearchPath, s.handleSearch)
	})

	s.router = r
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	env := s.searcher.FetchListings(r.Context())

	status := http.StatusOK
	if !env.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, env)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe blocks until ctx is done or SIGINT/SIGTERM is received, then
// drains in-flight requests within the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("could not listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
