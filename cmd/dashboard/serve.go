package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/spearit/dashboard/internal/config"
	"github.com/spearit/dashboard/pkg/middleware"
	"github.com/spearit/dashboard/pkg/server"
	"github.com/spearit/dashboard/pkg/session"
)

func serveCmd(path *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Long: `Start the HTTP server. Pages are served at /login and /signup,
the client at /_dash/client.js and live sessions at /_dash/ws.

SIGINT or SIGTERM shuts the server down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*path, addr)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := cfg.Log.Logger(os.Stderr)
	slog.SetDefault(logger)

	var (
		observers session.Observers
		opts      = []server.Option{server.WithLogger(logger)}
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := middleware.Prometheus(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
		observers = append(observers, m)
		opts = append(opts, server.WithMetrics(m, reg))
	}
	if cfg.Tracing.Enabled {
		tr := middleware.OpenTelemetry(middleware.WithTracerName(cfg.Tracing.ServiceName))
		observers = append(observers, tr)
		opts = append(opts, server.WithTracer(tr))
	}

	mgr := session.NewManager(managerConfig(cfg), logger, session.WithManagerObserver(observers))
	srv := server.New(serverConfig(cfg), mgr, opts...)

	logger.Info("dashboard starting",
		"version", version,
		"addr", cfg.Server.Addr,
		"metrics", cfg.Metrics.Enabled,
		"tracing", cfg.Tracing.Enabled)
	return srv.Run(ctx)
}

func managerConfig(cfg *config.Config) session.ManagerConfig {
	mc := session.DefaultManagerConfig()
	mc.MaxSessions = cfg.Session.MaxSessions
	mc.MaxSessionsPerIP = cfg.Session.MaxSessionsPerIP
	if d := cfg.Session.IdleTimeoutDuration(); d > 0 {
		mc.IdleTimeout = d
	}
	mc.Session.QueueSize = cfg.Session.QueueSize
	mc.Session.ToastLimit = cfg.Toast.Limit
	if d := cfg.Toast.LifetimeDuration(); d > 0 {
		mc.Session.ToastLifetime = d
	}
	return mc
}

func serverConfig(cfg *config.Config) server.Config {
	sc := server.DefaultConfig()
	sc.Addr = cfg.Server.Addr
	if d := cfg.Server.ReadTimeoutDuration(); d > 0 {
		sc.ReadTimeout = d
	}
	if d := cfg.Server.WriteTimeoutDuration(); d > 0 {
		sc.WriteTimeout = d
	}
	if d := cfg.Server.ShutdownTimeoutDuration(); d > 0 {
		sc.ShutdownTimeout = d
	}
	sc.AllowedOrigins = cfg.Server.AllowedOrigins
	sc.TrustedProxies = cfg.Server.TrustedProxies
	sc.StyleSheets = cfg.Server.StyleSheets
	if cfg.Metrics.Path != "" {
		sc.MetricsPath = cfg.Metrics.Path
	}
	return sc
}
