package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/spearit/dashboard/pkg/session"
)

// Default tracer name for the dashboard.
const defaultTracerName = "spearit-dashboard"

// OTelConfig configures tracing.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "spearit-dashboard").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// Filter determines which client events to trace by event type.
	// If nil, all events are traced.
	Filter func(eventType string) bool
}

// OTelOption configures tracing.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.Provider = tp
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(eventType string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// Tracer traces client events and HTTP requests.
type Tracer struct {
	tracer trace.Tracer
	filter func(string) bool
}

var _ session.Observer = (*Tracer)(nil)

// OpenTelemetry creates a Tracer. Every client event becomes a span named
// "dashboard.<event>" carrying the session ID and hydration ID; failed events
// record their error code.
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// given. Configure it in main() before starting the server:
//
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) *Tracer {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	return &Tracer{
		tracer: config.Provider.Tracer(config.TracerName),
		filter: config.Filter,
	}
}

func (t *Tracer) SessionOpened(string)                {}
func (t *Tracer) SessionClosed(string, time.Duration) {}
func (t *Tracer) ToastDismissed(string)               {}

// EventStarted implements session.Observer.
func (t *Tracer) EventStarted(id, hid, eventType string) func(code string) {
	if t.filter != nil && !t.filter(eventType) {
		return func(string) {}
	}

	_, span := t.tracer.Start(context.Background(), "dashboard."+eventType,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("dashboard.session_id", id),
			attribute.String("dashboard.event_type", eventType),
			attribute.String("dashboard.event_target", hid),
		),
	)
	return func(code string) {
		if code != "" {
			span.SetAttributes(attribute.String("dashboard.error_code", code))
			span.SetStatus(codes.Error, code)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// Handler starts a span per HTTP request and stores it in the request
// context.
func (t *Tracer) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := t.tracer.Start(r.Context(), "dashboard "+r.Method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		route := routePattern(r.WithContext(ctx))
		span.SetName("dashboard " + r.Method + " " + route)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(status)),
		)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

// SpanFromContext returns the request span, or a no-op span.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
