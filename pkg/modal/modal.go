// Package modal sequences the mount and animation lifecycle of an overlay
// dialog.
//
// A Lifecycle tracks two flags. Mounted means the dialog is in the render
// tree. Visible means it is in its animated-in state. Visible always implies
// Mounted. Opening mounts the dialog hidden and reveals it two frames later
// so the hidden state is painted before the transition starts. Closing hides
// it at once and unmounts it when the exit transition is over.
//
// The caller owns the open flag: the dialog view reports close requests and
// the caller decides whether to call SetOpen(false).
package modal

import (
	"time"

	"github.com/spearit/dashboard/pkg/schedule"
)

// DefaultDuration is the length of the enter and exit transitions.
const DefaultDuration = 150 * time.Millisecond

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithDuration sets the exit delay between hiding and unmounting.
func WithDuration(d time.Duration) Option {
	return func(l *Lifecycle) {
		l.duration = d
	}
}

// WithOnChange registers a callback invoked after every state mutation.
func WithOnChange(fn func()) Option {
	return func(l *Lifecycle) {
		l.onChange = fn
	}
}

// Lifecycle is the mounted/visible state machine of one dialog. It is used
// from a single event loop and is not safe for concurrent use.
type Lifecycle struct {
	sched    schedule.Scheduler
	duration time.Duration
	onChange func()

	open    bool
	mounted bool
	visible bool

	// group owns the callbacks of the transition in progress.
	group *schedule.Group
}

// New creates a closed Lifecycle.
func New(sched schedule.Scheduler, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		sched:    sched,
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetOpen applies the externally owned open flag. Only transitions act;
// repeating the current value does nothing.
func (l *Lifecycle) SetOpen(open bool) {
	if open == l.open {
		return
	}
	l.open = open

	g := l.restart()
	if open {
		l.set(true, false)
		g.NextFrame(func() {
			g.NextFrame(func() {
				l.set(true, true)
			})
		})
		return
	}

	l.set(l.mounted, false)
	g.After(l.duration, func() {
		l.set(false, false)
	})
}

// Open is shorthand for SetOpen(true).
func (l *Lifecycle) Open() { l.SetOpen(true) }

// Close is shorthand for SetOpen(false).
func (l *Lifecycle) Close() { l.SetOpen(false) }

// Dispose cancels the transition in progress. Nothing scheduled before
// Dispose mutates the lifecycle afterwards.
func (l *Lifecycle) Dispose() {
	if l.group != nil {
		l.group.Cancel()
		l.group = nil
	}
}

// IsOpen returns the last value passed to SetOpen.
func (l *Lifecycle) IsOpen() bool { return l.open }

// Mounted reports whether the dialog is in the render tree.
func (l *Lifecycle) Mounted() bool { return l.mounted }

// Visible reports whether the dialog is in its shown state.
func (l *Lifecycle) Visible() bool { return l.visible }

// restart cancels the previous transition and returns a fresh group for the
// next one.
func (l *Lifecycle) restart() *schedule.Group {
	l.Dispose()
	l.group = schedule.NewGroup(l.sched)
	return l.group
}

func (l *Lifecycle) set(mounted, visible bool) {
	if l.mounted == mounted && l.visible == visible {
		return
	}
	l.mounted = mounted
	l.visible = visible && mounted
	if l.onChange != nil {
		l.onChange()
	}
}
