package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/spearit/dashboard/internal/errors"
)

const (
	// DefaultConfigFile is read when no --config flag is given.
	DefaultConfigFile = "dashboard.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "DASHBOARD_"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Session SessionConfig `yaml:"session" koanf:"session"`
	Toast   ToastConfig   `yaml:"toast" koanf:"toast"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	Metrics MetricsConfig `yaml:"metrics" koanf:"metrics"`
	Tracing TracingConfig `yaml:"tracing" koanf:"tracing"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" koanf:"addr" validate:"required,hostname_port"`

	// ReadTimeout, WriteTimeout and ShutdownTimeout are Go durations ("15s").
	ReadTimeout     string `yaml:"read_timeout" koanf:"read_timeout" validate:"duration"`
	WriteTimeout    string `yaml:"write_timeout" koanf:"write_timeout" validate:"duration"`
	ShutdownTimeout string `yaml:"shutdown_timeout" koanf:"shutdown_timeout" validate:"duration"`

	// AllowedOrigins lists origins allowed by CORS and the WebSocket
	// upgrader. Empty allows same-origin requests only.
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" koanf:"allowed_origins" validate:"dive,url"`

	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// believed when resolving the client address.
	TrustedProxies []string `yaml:"trusted_proxies,omitempty" koanf:"trusted_proxies" validate:"dive,ip|cidr"`

	// StyleSheets are linked from every page.
	StyleSheets []string `yaml:"stylesheets,omitempty" koanf:"stylesheets"`
}

// SessionConfig contains per-tab session settings.
type SessionConfig struct {
	// IdleTimeout closes sessions without a live connection for this long.
	IdleTimeout string `yaml:"idle_timeout" koanf:"idle_timeout" validate:"duration"`

	// MaxSessions caps concurrent sessions. Zero means unlimited.
	MaxSessions int `yaml:"max_sessions" koanf:"max_sessions" validate:"gte=0"`

	// MaxSessionsPerIP caps sessions per client address. Zero means
	// unlimited.
	MaxSessionsPerIP int `yaml:"max_sessions_per_ip" koanf:"max_sessions_per_ip" validate:"gte=0"`

	// QueueSize is the event loop's dispatch buffer.
	QueueSize int `yaml:"queue_size" koanf:"queue_size" validate:"gte=1"`
}

// ToastConfig contains notification settings.
type ToastConfig struct {
	// Limit is the number of toasts visible at once.
	Limit int `yaml:"limit" koanf:"limit" validate:"gte=1"`

	// Lifetime is how long a toast stays before dismissing itself.
	Lifetime string `yaml:"lifetime" koanf:"lifetime" validate:"duration"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" koanf:"format" validate:"oneof=text json"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" koanf:"enabled"`
	Namespace string `yaml:"namespace" koanf:"namespace" validate:"required_if=Enabled true"`
	Path      string `yaml:"path" koanf:"path" validate:"startswith=/"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" koanf:"enabled"`
	ServiceName string `yaml:"service_name" koanf:"service_name"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			ShutdownTimeout: "10s",
		},
		Session: SessionConfig{
			IdleTimeout:      "10m",
			MaxSessionsPerIP: 100,
			QueueSize:        256,
		},
		Toast: ToastConfig{
			Limit:    3,
			Lifetime: "4s",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "dashboard",
			Path:      "/metrics",
		},
		Tracing: TracingConfig{
			ServiceName: "spearit-dashboard",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.New(errors.CodeConfigLoad).
					WithDetailf("reading %s", path).Wrap(err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigLoad).
				WithDetailf("accessing %s", path).Wrap(err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).
			WithDetail("loading environment overrides").Wrap(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).
			WithDetail("decoding configuration").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps DASHBOARD_SESSION__IDLE_TIMEOUT to session.idle_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// duration parses a value already checked by Validate.
func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

// ReadTimeoutDuration returns Server.ReadTimeout parsed.
func (s ServerConfig) ReadTimeoutDuration() time.Duration { return duration(s.ReadTimeout) }

// WriteTimeoutDuration returns Server.WriteTimeout parsed.
func (s ServerConfig) WriteTimeoutDuration() time.Duration { return duration(s.WriteTimeout) }

// ShutdownTimeoutDuration returns Server.ShutdownTimeout parsed.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return duration(s.ShutdownTimeout)
}

// IdleTimeoutDuration returns Session.IdleTimeout parsed.
func (s SessionConfig) IdleTimeoutDuration() time.Duration { return duration(s.IdleTimeout) }

// LifetimeDuration returns Toast.Lifetime parsed.
func (t ToastConfig) LifetimeDuration() time.Duration { return duration(t.Lifetime) }

// Logger builds the process logger.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SlogLevel maps Level to a slog level, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
