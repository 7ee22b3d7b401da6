package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spearit/dashboard/pkg/schedule"
)

// Level is the toast notification type.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

const (
	// DefaultLifetime is how long a toast stays up before dismissing itself.
	DefaultLifetime = 4 * time.Second

	// DefaultExitDuration is how long a dismissed toast stays in the registry
	// so its exit transition can play.
	DefaultExitDuration = 150 * time.Millisecond
)

// Toast is a single notification.
type Toast struct {
	ID        string
	Level     Level
	Title     string
	Message   string
	Visible   bool
	CreatedAt time.Time
}

// Dismisser is the read and dismiss surface the limiter needs.
type Dismisser interface {
	Toasts() []Toast
	Dismiss(id string) bool
}

// Watchable notifies subscribers whenever its toast set changes.
type Watchable interface {
	Subscribe(fn func()) (unsubscribe func())
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLifetime sets the auto-dismiss delay. Zero disables auto-dismiss.
func WithLifetime(d time.Duration) RegistryOption {
	return func(r *Registry) { r.lifetime = d }
}

// WithExitDuration sets how long dismissed toasts remain before removal.
func WithExitDuration(d time.Duration) RegistryOption {
	return func(r *Registry) { r.exit = d }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithIDs overrides the toast id generator.
func WithIDs(next func() string) RegistryOption {
	return func(r *Registry) { r.newID = next }
}

// WithOnDismiss registers a hook called for every dismissed toast.
func WithOnDismiss(fn func(Toast)) RegistryOption {
	return func(r *Registry) { r.onDismiss = fn }
}

// Registry is the session-owned set of toasts.
type Registry struct {
	sched     schedule.Scheduler
	lifetime  time.Duration
	exit      time.Duration
	now       func() time.Time
	newID     func() string
	onDismiss func(Toast)

	mu      sync.Mutex
	toasts  []Toast
	timers  map[string]*schedule.Group
	subs    map[int]func()
	nextSub int
}

// NewRegistry creates an empty registry scheduling through sched.
func NewRegistry(sched schedule.Scheduler, opts ...RegistryOption) *Registry {
	r := &Registry{
		sched:    sched,
		lifetime: DefaultLifetime,
		exit:     DefaultExitDuration,
		now:      time.Now,
		newID:    uuid.NewString,
		timers:   make(map[string]*schedule.Group),
		subs:     make(map[int]func()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Show adds a visible toast and returns it.
func (r *Registry) Show(level Level, title, message string) Toast {
	t := Toast{
		ID:        r.newID(),
		Level:     level,
		Title:     title,
		Message:   message,
		Visible:   true,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	if r.lifetime > 0 {
		g := schedule.NewGroup(r.sched)
		r.timers[t.ID] = g
		id := t.ID
		g.After(r.lifetime, func() { r.Dismiss(id) })
	}
	r.mu.Unlock()

	r.notify()
	return t
}

// Success shows a success toast.
func (r *Registry) Success(title, message string) Toast {
	return r.Show(LevelSuccess, title, message)
}

// Error shows an error toast.
func (r *Registry) Error(title, message string) Toast {
	return r.Show(LevelError, title, message)
}

// Warning shows a warning toast.
func (r *Registry) Warning(title, message string) Toast {
	return r.Show(LevelWarning, title, message)
}

// Info shows an info toast.
func (r *Registry) Info(title, message string) Toast {
	return r.Show(LevelInfo, title, message)
}

// Dismiss hides a visible toast and schedules its removal. It reports
// whether the toast was visible.
func (r *Registry) Dismiss(id string) bool {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 || !r.toasts[i].Visible {
		r.mu.Unlock()
		return false
	}
	r.toasts[i].Visible = false
	dismissed := r.toasts[i]

	if g := r.timers[id]; g != nil {
		g.Cancel()
	}
	g := schedule.NewGroup(r.sched)
	r.timers[id] = g
	g.After(r.exit, func() { r.remove(id) })
	r.mu.Unlock()

	if r.onDismiss != nil {
		r.onDismiss(dismissed)
	}
	r.notify()
	return true
}

// DismissAll hides every visible toast.
func (r *Registry) DismissAll() {
	for _, t := range r.Visible() {
		r.Dismiss(t.ID)
	}
}

// Toasts returns a copy of every toast in registration order, including
// dismissed toasts still playing their exit transition.
func (r *Registry) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

// Visible returns the visible toasts in registration order.
func (r *Registry) Visible() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Toast
	for _, t := range r.toasts {
		if t.Visible {
			out = append(out, t)
		}
	}
	return out
}

// Subscribe registers fn to run after every change to the toast set.
func (r *Registry) Subscribe(fn func()) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Close cancels every pending auto-dismiss and removal.
func (r *Registry) Close() {
	r.mu.Lock()
	timers := r.timers
	r.timers = make(map[string]*schedule.Group)
	r.mu.Unlock()
	for _, g := range timers {
		g.Cancel()
	}
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	r.toasts = append(r.toasts[:i], r.toasts[i+1:]...)
	delete(r.timers, id)
	r.mu.Unlock()

	r.notify()
}

// index must be called with r.mu held.
func (r *Registry) index(id string) int {
	for i, t := range r.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// notify runs subscribers outside the lock; they may call back into r.
func (r *Registry) notify() {
	r.mu.Lock()
	subs := make([]func(), 0, len(r.subs))
	for i := 0; i < r.nextSub; i++ {
		if fn, ok := r.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
