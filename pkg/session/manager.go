package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spearit/dashboard/internal/errors"
	"github.com/spearit/dashboard/pkg/vdom"
)

// ManagerConfig configures the session manager.
type ManagerConfig struct {
	// MaxSessions caps live sessions. When reached, the least recently active
	// session without a client is evicted; if every session has a client,
	// creation fails. Zero means unlimited.
	MaxSessions int

	// MaxSessionsPerIP caps sessions per client address. Zero means unlimited.
	MaxSessionsPerIP int

	// IdleTimeout closes sessions that have had no client for this long.
	// Default: 10 minutes.
	IdleTimeout time.Duration

	// SweepInterval is how often Run looks for idle sessions.
	// Default: 1 minute.
	SweepInterval time.Duration

	// Session is applied to every session the manager creates.
	Session Config
}

// DefaultManagerConfig returns a ManagerConfig with sensible defaults.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		MaxSessionsPerIP: 100,
		IdleTimeout:      10 * time.Minute,
		SweepInterval:    time.Minute,
		Session:          DefaultConfig(),
	}
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerObserver sets the observer passed to every session.
func WithManagerObserver(o Observer) ManagerOption {
	return func(m *Manager) { m.observer = o }
}

// WithIDGenerator replaces uuid.NewString for session IDs.
func WithIDGenerator(fn func() string) ManagerOption {
	return func(m *Manager) { m.newID = fn }
}

// Manager tracks live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ipOf     map[string]string
	byIP     map[string]int // live sessions plus reservations
	pending  int            // reservations not yet inserted
	stopped  bool

	config   ManagerConfig
	logger   *slog.Logger
	observer Observer
	newID    func() string
}

// NewManager creates a session manager.
func NewManager(config ManagerConfig, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultManagerConfig().IdleTimeout
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = DefaultManagerConfig().SweepInterval
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		ipOf:     make(map[string]string),
		byIP:     make(map[string]int),
		config:   config,
		logger:   logger.With("component", "session_manager"),
		observer: NopObserver{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session for a client at ip. build receives the new session
// and returns the root component to mount.
func (m *Manager) Create(ip string, build func(*Session) vdom.Component) (*Session, error) {
	if err := m.reserve(ip); err != nil {
		return nil, err
	}
	inserted := false
	defer func() {
		if !inserted {
			m.release(ip)
		}
	}()

	s := New(m.newID(),
		WithConfig(m.config.Session),
		WithLogger(m.logger),
		WithObserver(m.observer),
		WithOnClose(m.forget),
	)
	s.Mount(build(s))

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil, errors.New(errors.CodeSessionClosed).WithDetail("server shutting down")
	}
	m.pending--
	m.sessions[s.ID] = s
	m.ipOf[s.ID] = ip
	inserted = true
	m.mu.Unlock()

	s.Start()
	m.logger.Debug("session created", "session_id", s.ID, "ip", ip)
	return s, nil
}

// maxEvictions bounds how often reserve evicts before giving up.
const maxEvictions = 3

// reserve claims a slot for a session from ip under the write lock, so
// concurrent creations cannot pass the limits together. At the global limit
// the least recently active detached session is evicted to make room.
func (m *Manager) reserve(ip string) error {
	for evicted := 0; ; evicted++ {
		m.mu.Lock()
		if m.stopped {
			m.mu.Unlock()
			return errors.New(errors.CodeSessionClosed).WithDetail("server shutting down")
		}
		if m.config.MaxSessionsPerIP > 0 && m.byIP[ip] >= m.config.MaxSessionsPerIP {
			m.mu.Unlock()
			return errors.New(errors.CodeSessionLimit).WithDetailf("too many sessions from %s", ip)
		}
		if m.config.MaxSessions > 0 && len(m.sessions)+m.pending >= m.config.MaxSessions {
			victim := m.leastRecentDetached()
			m.mu.Unlock()
			if victim == nil || evicted >= maxEvictions {
				return errors.New(errors.CodeSessionLimit).
					WithDetailf("%d sessions open", m.config.MaxSessions)
			}
			m.logger.Info("evicting idle session", "session_id", victim.ID)
			victim.Close()
			continue
		}
		m.byIP[ip]++
		m.pending++
		m.mu.Unlock()
		return nil
	}
}

// release returns a slot claimed by reserve that never became a session.
func (m *Manager) release(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--
	m.decIP(ip)
}

func (m *Manager) decIP(ip string) {
	if m.byIP[ip] <= 1 {
		delete(m.byIP, ip)
	} else {
		m.byIP[ip]--
	}
}

// leastRecentDetached returns the idle eviction candidate. Call with m.mu held.
func (m *Manager) leastRecentDetached() *Session {
	var victim *Session
	for _, s := range m.sessions {
		if s.Connected() {
			continue
		}
		if victim == nil || s.LastActive().Before(victim.LastActive()) {
			victim = s
		}
	}
	return victim
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || s.IsClosed() {
		return nil, errors.New(errors.CodeSessionNotFound).WithDetailf("id %q", id)
	}
	return s, nil
}

// Remove closes and forgets a session.
func (m *Manager) Remove(id string) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.Close()
	}
}

// forget drops a closed session from the tables.
func (m *Manager) forget(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; !ok {
		return
	}
	ip := m.ipOf[s.ID]
	delete(m.sessions, s.ID)
	delete(m.ipOf, s.ID)
	m.decIP(ip)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions that have had no client for IdleTimeout as of now.
// It returns how many were closed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.RLock()
	var idle []*Session
	for _, s := range m.sessions {
		if !s.Connected() && now.Sub(s.LastActive()) >= m.config.IdleTimeout {
			idle = append(idle, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range idle {
		s.Close()
	}
	if len(idle) > 0 {
		m.logger.Info("swept idle sessions", "count", len(idle))
	}
	return len(idle)
}

// Run sweeps idle sessions until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

// Shutdown closes every session and refuses new ones.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.stopped = true
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
	m.logger.Info("session manager stopped", "closed", len(all))
}
