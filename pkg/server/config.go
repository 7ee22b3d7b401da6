package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the address to listen on. Default: ":8080".
	Addr string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	// Default: 4096 each.
	ReadBufferSize  int
	WriteBufferSize int

	// MaxMessageSize caps a single client frame. Default: 64KB.
	MaxMessageSize int64

	// AllowedOrigins enables CORS for these origins and lets them open
	// WebSockets. Empty means same-origin only.
	AllowedOrigins []string

	// TrustedProxies lists proxy IPs or CIDRs whose Forwarded and
	// X-Forwarded-For headers are believed.
	TrustedProxies []string

	// StyleSheets are linked from every page.
	StyleSheets []string

	// MetricsPath is where Prometheus metrics are served. Default: "/metrics".
	MetricsPath string
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		MaxMessageSize:  64 * 1024,
		MetricsPath:     "/metrics",
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.MetricsPath == "" {
		c.MetricsPath = d.MetricsPath
	}
	return c
}

// SameOriginCheck reports whether the request's Origin matches its Host.
// Requests without an Origin header pass.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || r.Host == "" {
		return false
	}
	return u.Host == r.Host
}

// originChecker accepts same-origin requests and the allowed origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return SameOriginCheck
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		if SameOriginCheck(r) {
			return true
		}
		_, ok := set[r.Header.Get("Origin")]
		return ok
	}
}
