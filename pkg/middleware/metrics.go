package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spearit/dashboard/pkg/session"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "dashboard").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event and request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "dashboard",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the dashboard's Prometheus collectors. It observes sessions
// and wraps HTTP handlers.
type Metrics struct {
	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventErrors     *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	sessionLifetime prometheus.Histogram
	toastsDismissed *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ session.Observer = (*Metrics)(nil)

// Prometheus creates and registers the dashboard collectors.
//
// Metrics collected:
//   - dashboard_events_total: client events by type and status
//   - dashboard_event_duration_seconds: handler duration by event type
//   - dashboard_event_errors_total: failed events by type and error code
//   - dashboard_active_sessions: live sessions
//   - dashboard_session_lifetime_seconds: how long closed sessions lived
//   - dashboard_toasts_dismissed_total: dismissed toasts by level
//   - dashboard_http_requests_total: HTTP requests by route and status code
//   - dashboard_http_request_duration_seconds: HTTP latency by route
func Prometheus(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"event"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_errors_total",
			Help:        "Total number of failed client events",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "code"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of live sessions",
			ConstLabels: config.ConstLabels,
		}),

		sessionLifetime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "session_lifetime_seconds",
			Help:        "Lifetime of closed sessions in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{10, 60, 300, 900, 3600, 14400}, // 10s to 4h
		}),

		toastsDismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_dismissed_total",
			Help:        "Total number of dismissed toasts",
			ConstLabels: config.ConstLabels,
		}, []string{"level"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),
	}
}

// SessionOpened implements session.Observer.
func (m *Metrics) SessionOpened(string) {
	m.activeSessions.Inc()
}

// SessionClosed implements session.Observer.
func (m *Metrics) SessionClosed(_ string, lifetime time.Duration) {
	m.activeSessions.Dec()
	m.sessionLifetime.Observe(lifetime.Seconds())
}

// EventStarted implements session.Observer.
func (m *Metrics) EventStarted(_, _, eventType string) func(code string) {
	start := time.Now()
	return func(code string) {
		m.eventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		status := "success"
		if code != "" {
			status = "error"
			m.eventErrors.WithLabelValues(eventType, code).Inc()
		}
		m.eventsTotal.WithLabelValues(eventType, status).Inc()
	}
}

// ToastDismissed implements session.Observer.
func (m *Metrics) ToastDismissed(level string) {
	m.toastsDismissed.WithLabelValues(level).Inc()
}

// Handler records request count and latency. Requests are labelled with the
// chi route pattern to keep cardinality bounded.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// routePattern returns the matched chi pattern, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
