package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// handleWebSocket attaches a live connection to an existing session. An
// unknown session id is answered with 404 before upgrading, which tells the
// client to reload the page.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.URL.Query().Get("session"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "websocket upgrade required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "session_id", sess.ID, "error", err)
		return
	}
	conn.SetReadLimit(s.cfg.MaxMessageSize)

	if err := sess.Attach(conn); err != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error())
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
		return
	}
	s.logger.Debug("session attached", "session_id", sess.ID)
}
