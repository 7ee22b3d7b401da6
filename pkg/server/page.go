package server

import (
	"net/http"
	"strconv"

	"github.com/spearit/dashboard/internal/errors"
	"github.com/spearit/dashboard/internal/pages"
	"github.com/spearit/dashboard/pkg/render"
	"github.com/spearit/dashboard/pkg/session"
	"github.com/spearit/dashboard/pkg/vdom"
)

// retryAfter is sent with 503 responses when the session limit is reached.
const retryAfter = 30

// handlePage starts a session for the requested page and writes its first
// render as a complete document.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	build, status := pages.Match(r.URL.Path)

	sess, err := s.sessions.Create(s.clientIP(r), func(sess *session.Session) vdom.Component {
		return build(pages.EnvFor(sess, s.submit))
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	html, title, err := sess.Page()
	if err != nil {
		s.sessions.Remove(sess.ID)
		s.writeError(w, r, errors.FromError(err, errors.CodeRenderFailed))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	err = render.WritePage(w, render.PageData{
		Body:        html,
		Title:       title,
		SessionID:   sess.ID,
		StyleSheets: s.cfg.StyleSheets,
	})
	if err != nil {
		s.logger.Debug("page write failed", "session_id", sess.ID, "error", err)
	}
}

// writeError maps a session error to an HTTP status.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.CodeSessionLimit, errors.CodeSessionClosed:
		status = http.StatusServiceUnavailable
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	case errors.CodeSessionNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	http.Error(w, http.StatusText(status), status)
}
