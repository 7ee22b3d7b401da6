package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsEvents(t *testing.T) {
	m := Prometheus(WithRegistry(prometheus.NewRegistry()))

	m.EventStarted("s1", "h1", "input")("")
	m.EventStarted("s1", "h2", "click")("D006")

	if got := metricCounterValue(t, m.eventsTotal.WithLabelValues("input", "success")); got != 1 {
		t.Fatalf("events_total(input,success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.eventsTotal.WithLabelValues("click", "error")); got != 1 {
		t.Fatalf("events_total(click,error)=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.eventErrors.WithLabelValues("click", "D006")); got != 1 {
		t.Fatalf("event_errors_total(click,D006)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.eventDuration.WithLabelValues("input")); got != 1 {
		t.Fatalf("event_duration_seconds(input) count=%v, want 1", got)
	}
}

func TestMetricsSessionsAndToasts(t *testing.T) {
	m := Prometheus(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	m.SessionOpened("a")
	m.SessionOpened("b")
	m.SessionClosed("a", 90*time.Second)
	m.ToastDismissed("error")
	m.ToastDismissed("error")

	if got := metricGaugeValue(t, m.activeSessions); got != 1 {
		t.Fatalf("active_sessions=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.sessionLifetime); got != 1 {
		t.Fatalf("session_lifetime_seconds count=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.toastsDismissed.WithLabelValues("error")); got != 2 {
		t.Fatalf("toasts_dismissed_total(error)=%v, want 2", got)
	}
}

func TestMetricsHandlerUsesRoutePattern(t *testing.T) {
	m := Prometheus(WithRegistry(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	})

	for _, path := range []string{"/users/1", "/users/2", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/users/{id}", "418")); got != 2 {
		t.Fatalf("http_requests_total(/users/{id},418)=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/ok", "200")); got != 1 {
		t.Fatalf("http_requests_total(/ok,200)=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("unmatched", "404")); got != 1 {
		t.Fatalf("http_requests_total(unmatched,404)=%v, want 1", got)
	}
}

func TestPrometheusRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	Prometheus(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	Prometheus(WithRegistry(reg))
}
