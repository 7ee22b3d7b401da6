package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spearit/dashboard/internal/pages"
	"github.com/spearit/dashboard/pkg/middleware"
	"github.com/spearit/dashboard/pkg/session"
)

// Server is the dashboard's HTTP and WebSocket front.
type Server struct {
	cfg      Config
	sessions *session.Manager
	router   chi.Router
	upgrader websocket.Upgrader
	proxies  proxies
	logger   *slog.Logger

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracer   *middleware.Tracer
	submit   pages.SubmitFunc

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics instruments requests with m and serves g at the metrics path.
func WithMetrics(m *middleware.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithTracer traces every request with t.
func WithTracer(t *middleware.Tracer) Option {
	return func(s *Server) { s.tracer = t }
}

// WithSubmit sets the hook that receives valid form submissions.
func WithSubmit(fn pages.SubmitFunc) Option {
	return func(s *Server) { s.submit = fn }
}

// New creates a server over the session manager mgr.
func New(cfg Config, mgr *session.Manager, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg.withDefaults(),
		sessions: mgr,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	s.proxies = parseProxies(s.cfg.TrustedProxies, s.logger)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  s.cfg.ReadBufferSize,
		WriteBufferSize: s.cfg.WriteBufferSize,
		CheckOrigin:     originChecker(s.cfg.AllowedOrigins),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	if s.tracer != nil {
		r.Use(s.tracer.Handler)
	}
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/_dash/client.js", s.serveClient)
	r.Head("/_dash/client.js", s.serveClient)
	r.Get("/_dash/ws", s.handleWebSocket)
	if s.gatherer != nil {
		r.Handle(s.cfg.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/*", s.handlePage)
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions returns the session manager.
func (s *Server) Sessions() *session.Manager { return s.sessions }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully. The idle
// session sweeper runs alongside.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.sessions.Shutdown()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
