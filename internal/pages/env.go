// Package pages composes the dashboard screens from the ui components and
// maps request paths to them.
package pages

import (
	"log/slog"

	"github.com/spearit/dashboard/pkg/doctitle"
	"github.com/spearit/dashboard/pkg/schedule"
	"github.com/spearit/dashboard/pkg/session"
	"github.com/spearit/dashboard/pkg/toast"
)

// SubmitFunc receives the values of a valid form. A returned error is shown
// to the user as a toast.
type SubmitFunc func(form string, values map[string]string) error

// Env is what a page needs from its surroundings. Sessions provide one per
// browser tab; tests substitute a manual scheduler and recorders.
type Env struct {
	Sched  schedule.Scheduler
	Toasts *toast.Registry
	Title  doctitle.Setter
	// Submit is optional; without it forms report that authentication is not
	// connected.
	Submit SubmitFunc
	Logger *slog.Logger
}

// EnvFor returns the Env backed by s.
func EnvFor(s *session.Session, submit SubmitFunc) Env {
	return Env{
		Sched:  s,
		Toasts: s.Toasts(),
		Title:  s,
		Submit: submit,
		Logger: s.Logger(),
	}
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
