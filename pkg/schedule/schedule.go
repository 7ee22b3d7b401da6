// Package schedule defines deferred callbacks for a session event loop.
//
// Components never touch time.AfterFunc or the browser directly. They ask a
// Scheduler for a timer or an animation frame and keep the returned Cancel.
// A Group collects the cancels belonging to one logical transition so the
// whole transition can be invalidated with a single call.
//
//	g := schedule.NewGroup(sched)
//	g.NextFrame(func() {
//	    g.NextFrame(func() { visible = true })
//	})
//	...
//	g.Cancel() // neither frame callback will run
package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cancel invalidates a scheduled callback. Calling it after the callback ran,
// or more than once, is a no-op.
type Cancel func()

// Noop is a Cancel that does nothing.
func Noop() {}

// Scheduler schedules callbacks onto a single logical thread.
//
// Callbacks run on the owner's event loop, never concurrently with each other
// or with event handlers.
type Scheduler interface {
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func()) Cancel

	// NextFrame runs fn at the next animation frame boundary.
	NextFrame(fn func()) Cancel
}

// AfterFunc is the timer primitive for event-loop schedulers: it waits d on a
// runtime timer and hands fn to dispatch. A cancel that lands after the timer
// fired but before the dispatched callback ran still suppresses fn.
func AfterFunc(dispatch func(func()), d time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	timer := time.AfterFunc(d, func() {
		if cancelled.Load() {
			return
		}
		dispatch(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

// Group owns the cancels of one transition.
//
// Once cancelled a group stays cancelled: callbacks scheduled on it afterwards
// are dropped immediately. Start a new transition with a new group.
type Group struct {
	sched Scheduler

	mu        sync.Mutex
	pending   map[*entry]struct{}
	cancelled bool
}

type entry struct {
	cancel Cancel
	done   bool
}

// NewGroup creates a group scheduling through s.
func NewGroup(s Scheduler) *Group {
	return &Group{sched: s, pending: make(map[*entry]struct{})}
}

// After schedules fn on the group's scheduler after d.
func (g *Group) After(d time.Duration, fn func()) Cancel {
	e := &entry{}
	return g.track(e, g.sched.After(d, g.wrap(e, fn)))
}

// NextFrame schedules fn on the group's scheduler at the next frame.
func (g *Group) NextFrame(fn func()) Cancel {
	e := &entry{}
	return g.track(e, g.sched.NextFrame(g.wrap(e, fn)))
}

// wrap forgets e once the callback starts, so long-lived groups don't
// accumulate cancels.
func (g *Group) wrap(e *entry, fn func()) func() {
	return func() {
		g.mu.Lock()
		e.done = true
		delete(g.pending, e)
		g.mu.Unlock()
		fn()
	}
}

func (g *Group) track(e *entry, cancel Cancel) Cancel {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelled {
		cancel()
		return Noop
	}
	if e.done {
		return Noop
	}
	e.cancel = cancel
	g.pending[e] = struct{}{}

	return func() {
		g.mu.Lock()
		_, ok := g.pending[e]
		delete(g.pending, e)
		g.mu.Unlock()
		if ok {
			cancel()
		}
	}
}

// Cancel invalidates every callback scheduled on the group, including
// callbacks scheduled later.
func (g *Group) Cancel() {
	g.mu.Lock()
	pending := g.pending
	g.pending = make(map[*entry]struct{})
	g.cancelled = true
	g.mu.Unlock()

	for e := range pending {
		e.cancel()
	}
}

// Cancelled reports whether Cancel has been called.
func (g *Group) Cancelled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cancelled
}

// Pending returns the number of scheduled callbacks that have not started.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}
