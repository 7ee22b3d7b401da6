package session

import (
	stderrors "errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/spearit/dashboard/internal/errors"
)

// Conn is the part of *websocket.Conn a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

var errNotConnected = stderrors.New("no client connected")

// Attach connects a client. A connection already attached is closed. The
// client receives a full render of the current tree.
func (s *Session) Attach(conn Conn) error {
	if s.closed.Load() {
		return errors.New(errors.CodeSessionClosed)
	}

	s.mu.Lock()
	old := s.conn
	s.conn = conn
	s.mu.Unlock()
	if old != nil {
		closeConn(old)
	}

	s.Touch()
	s.logger.Debug("client attached")

	conn.SetPongHandler(func(string) error {
		s.Touch()
		return conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	s.Dispatch(s.onAttach)
	go s.ReadLoop(conn)
	go s.pingLoop(conn)
	return nil
}

// ReadLoop reads client frames from conn and queues them for the event loop.
// It returns when the connection fails; the session stays open so the client
// can reconnect until the idle sweep closes it.
func (s *Session) ReadLoop(conn Conn) {
	defer s.detach(conn)

	for {
		if s.cfg.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}
		s.Touch()

		msg, err := DecodeClientMessage(data)
		if err != nil {
			s.logger.Warn("frame decode error", "error", err)
			if de := errors.FromError(err, errors.CodeMalformedFrame); de != nil {
				s.sendError(de)
			}
			continue
		}

		select {
		case s.events <- msg:
		case <-s.done:
			return
		default:
			s.logger.Warn("event queue full, dropping message", "type", msg.T)
		}
	}
}

// detach forgets conn if it is still the attached connection.
func (s *Session) detach(conn Conn) {
	s.mu.Lock()
	current := s.conn == conn
	if current {
		s.conn = nil
	}
	s.mu.Unlock()
	conn.Close()

	if current {
		s.logger.Debug("client detached")
		s.Dispatch(s.onDetach)
	}
}

// pingLoop keeps the connection alive until it is replaced or closed.
func (s *Session) pingLoop(conn Conn) {
	if s.cfg.PingInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			current := s.conn == conn
			s.mu.Unlock()
			if !current {
				return
			}
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Debug("ping failed", "error", err)
				conn.Close()
				return
			}
		}
	}
}

// send writes one server message to the attached client.
func (s *Session) send(msg ServerMessage) error {
	data, err := msg.Encode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return errNotConnected
	}
	if s.cfg.WriteTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Warn("write failed", "type", msg.T, "error", err)
		// The read loop notices the closed connection and detaches it.
		s.conn.Close()
		return err
	}
	s.bytesSent.Add(uint64(len(data)))
	return nil
}

// sendError reports a coded error to the client. Delivery is best effort.
func (s *Session) sendError(err *errors.DashError) {
	if sendErr := s.send(errorMessage(err)); sendErr != nil && sendErr != errNotConnected {
		s.logger.Debug("error frame not delivered", "code", err.Code, "error", sendErr)
	}
}

// closeConn sends a normal close frame and closes the connection.
func closeConn(conn Conn) {
	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	conn.Close()
}
