// Package middleware provides the dashboard's metrics and tracing.
//
// Both Metrics and Tracer implement session.Observer, so they see every
// client event, session lifetime and toast dismissal, and both expose an
// HTTP middleware for chi.
//
// # Prometheus Metrics
//
//	m := middleware.Prometheus(middleware.WithNamespace("dashboard"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// The tracer uses the global provider unless WithTracerProvider is given:
//
//	tr := middleware.OpenTelemetry(middleware.WithTracerName("spearit-dashboard"))
//	r.Use(tr.Handler)
//
// Pass both to the session manager with session.Observers{m, tr}.
package middleware
