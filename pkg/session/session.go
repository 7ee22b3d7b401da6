package session

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spearit/dashboard/internal/errors"
	"github.com/spearit/dashboard/pkg/doctitle"
	"github.com/spearit/dashboard/pkg/render"
	"github.com/spearit/dashboard/pkg/schedule"
	"github.com/spearit/dashboard/pkg/toast"
	"github.com/spearit/dashboard/pkg/vdom"
)

// Config holds per-session settings.
type Config struct {
	// QueueSize bounds the event and dispatch queues.
	QueueSize int

	// FrameFallback is the frame interval used while no client is attached.
	FrameFallback time.Duration

	// ReadTimeout is how long a connection may stay silent. Pongs count.
	ReadTimeout time.Duration

	// WriteTimeout bounds a single frame write.
	WriteTimeout time.Duration

	// PingInterval is the heartbeat period. Must be below ReadTimeout.
	PingInterval time.Duration

	// ToastLimit is the number of toasts visible at once.
	ToastLimit int

	// ToastLifetime is the auto-dismiss delay of toasts.
	ToastLifetime time.Duration
}

// DefaultConfig returns the default session settings.
func DefaultConfig() Config {
	return Config{
		QueueSize:     256,
		FrameFallback: 16 * time.Millisecond,
		ReadTimeout:   60 * time.Second,
		WriteTimeout:  10 * time.Second,
		PingInterval:  25 * time.Second,
		ToastLimit:    toast.DefaultLimit,
		ToastLifetime: toast.DefaultLifetime,
	}
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets the session configuration.
func WithConfig(cfg Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithObserver sets the metrics and tracing observer.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithOnClose registers a callback run once the session closes.
func WithOnClose(fn func(*Session)) Option {
	return func(s *Session) { s.onClose = fn }
}

// Disposer is implemented by roots that hold scheduled work.
type Disposer interface {
	Dispose()
}

// Session is one browser tab: a component tree, its handlers, and the event
// loop that runs everything touching them.
type Session struct {
	ID        string
	CreatedAt time.Time

	cfg      Config
	logger   *slog.Logger
	observer Observer
	onClose  func(*Session)

	lastActive atomic.Int64
	closed     atomic.Bool
	eventCount atomic.Uint64
	bytesSent  atomic.Uint64

	// Connection
	mu   sync.Mutex // Protects conn and serializes writes
	conn Conn

	// Channels
	events     chan *ClientMessage
	dispatchCh chan func()
	done       chan struct{}
	stopped    chan struct{}

	// Fields below are owned by the event loop.
	root      vdom.Component
	renderer  *render.Renderer
	handlers  render.Handlers
	layout    string
	epoch     uint64
	title     string
	sentHTML  string
	sentTitle string
	sentEpoch uint64

	frameMu     sync.Mutex
	frames      []*frameTask
	rafPending  bool
	rafByClient bool
	fallback    schedule.Cancel

	// Dispatches that found the queue full wait here for the loop.
	overflowMu sync.Mutex
	overflow   []func()
	wake       chan struct{}

	toasts      *toast.Registry
	limiter     *toast.Limiter
	stopLimiter func()
}

var (
	_ schedule.Scheduler = (*Session)(nil)
	_ doctitle.Setter    = (*Session)(nil)
)

// New creates a session. Mount a root and call Start before use.
func New(id string, opts ...Option) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		cfg:       DefaultConfig(),
		logger:    slog.Default(),
		observer:  NopObserver{},
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		wake:      make(chan struct{}, 1),
		renderer:  render.NewRenderer(render.RendererConfig{HIDPrefix: hidPrefix}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.QueueSize <= 0 {
		s.cfg.QueueSize = DefaultConfig().QueueSize
	}
	if s.cfg.FrameFallback <= 0 {
		s.cfg.FrameFallback = DefaultConfig().FrameFallback
	}
	s.logger = s.logger.With("session_id", id)
	s.events = make(chan *ClientMessage, s.cfg.QueueSize)
	s.dispatchCh = make(chan func(), s.cfg.QueueSize)
	s.lastActive.Store(now.UnixNano())

	s.toasts = toast.NewRegistry(s,
		toast.WithLifetime(s.cfg.ToastLifetime),
		toast.WithOnDismiss(func(t toast.Toast) {
			s.observer.ToastDismissed(string(t.Level))
		}),
	)
	s.limiter = toast.NewLimiter(s.toasts, toast.WithLimit(s.cfg.ToastLimit))
	return s
}

// Mount sets the root component. Call before Start.
func (s *Session) Mount(root vdom.Component) {
	s.root = root
}

// Start runs the event loop.
func (s *Session) Start() {
	s.stopLimiter = s.limiter.Watch(s.toasts)
	s.observer.SessionOpened(s.ID)
	go s.EventLoop()
}

// Toasts returns the session's toast registry.
func (s *Session) Toasts() *toast.Registry { return s.toasts }

// Limiter returns the session's toast limiter.
func (s *Session) Limiter() *toast.Limiter { return s.limiter }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// SetTitle implements doctitle.Setter. The title is pushed to the browser
// with the next render. Call on the event loop.
func (s *Session) SetTitle(title string) { s.title = title }

// After implements schedule.Scheduler: fn runs on the event loop after d.
func (s *Session) After(d time.Duration, fn func()) schedule.Cancel {
	return schedule.AfterFunc(s.Dispatch, d, fn)
}

// NextFrame implements schedule.Scheduler: fn runs on the event loop at the
// next animation frame reported by the client.
func (s *Session) NextFrame(fn func()) schedule.Cancel {
	t := &frameTask{fn: fn}
	s.frameMu.Lock()
	s.frames = append(s.frames, t)
	s.frameMu.Unlock()
	return t.cancel
}

// Dispatch queues fn to run on the session's event loop. It is safe to call
// from any goroutine, the loop included, and never blocks. Callbacks are
// never discarded while the session is open: when the queue is full they
// wait in an overflow list the loop drains next. The tree re-renders after
// fn returns.
func (s *Session) Dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	default:
		s.overflowMu.Lock()
		s.overflow = append(s.overflow, fn)
		n := len(s.overflow)
		s.overflowMu.Unlock()
		if n == 1 {
			s.logger.Debug("dispatch queue full, deferring callbacks")
		}
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

func (s *Session) takeOverflow() []func() {
	s.overflowMu.Lock()
	defer s.overflowMu.Unlock()
	fns := s.overflow
	s.overflow = nil
	return fns
}

// Call runs fn on the event loop and waits for it to finish.
func (s *Session) Call(fn func()) error {
	if s.closed.Load() {
		return errors.New(errors.CodeSessionClosed)
	}
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}
	select {
	case s.dispatchCh <- task:
	case <-s.done:
		return errors.New(errors.CodeSessionClosed)
	}
	select {
	case <-finished:
		return nil
	case <-s.stopped:
		return errors.New(errors.CodeSessionClosed)
	}
}

// Page renders the tree on the event loop for a full page response and
// returns the markup and document title.
func (s *Session) Page() (html, title string, err error) {
	callErr := s.Call(func() {
		html, err = s.render()
		title = s.title
	})
	if callErr != nil {
		return "", "", callErr
	}
	return html, title, err
}

// Touch records activity.
func (s *Session) Touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// LastActive returns the time of the last client activity.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Connected reports whether a client connection is attached.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Close shuts the session down. Cleanup of the tree runs on the event loop.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn != nil {
		closeConn(conn)
	}

	s.observer.SessionClosed(s.ID, time.Since(s.CreatedAt))
	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"bytes_sent", s.bytesSent.Load())

	if s.onClose != nil {
		s.onClose(s)
	}
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Stopped returns a channel that's closed when the event loop has exited.
func (s *Session) Stopped() <-chan struct{} {
	return s.stopped
}

// frameTask is a queued NextFrame callback.
type frameTask struct {
	fn        func()
	cancelled atomic.Bool
}

func (t *frameTask) cancel() { t.cancelled.Store(true) }
