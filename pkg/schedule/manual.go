package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler for tests. Time only moves on Advance
// and frames only happen on Frame.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTask
	frames []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return m.canceller(t)
}

// NextFrame implements Scheduler.
func (m *Manual) NextFrame(fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{seq: m.seq, fn: fn}
	m.frames = append(m.frames, t)
	return m.canceller(t)
}

func (m *Manual) canceller(t *manualTask) Cancel {
	return func() {
		m.mu.Lock()
		t.cancelled = true
		m.mu.Unlock()
	}
}

// Advance moves the clock forward by d, running every timer that falls due
// in order. Timers scheduled by those callbacks run too if they fall inside
// the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.popDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.at
		m.mu.Unlock()
		t.fn()
	}
}

// popDue removes and returns the earliest live timer due at or before target.
func (m *Manual) popDue(target time.Duration) *manualTask {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at != m.timers[j].at {
			return m.timers[i].at < m.timers[j].at
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	t := m.timers[0]
	if t.at > target {
		return nil
	}
	m.timers = m.timers[1:]
	return t
}

// Frame runs the frame callbacks queued before the call and returns how many
// ran. Callbacks queued while running wait for the next Frame.
func (m *Manual) Frame() int {
	m.mu.Lock()
	batch := m.frames
	m.frames = nil
	m.mu.Unlock()

	ran := 0
	for _, t := range batch {
		m.mu.Lock()
		cancelled := t.cancelled
		m.mu.Unlock()
		if cancelled {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// Now returns the simulated time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// PendingTimers returns the number of live timers.
func (m *Manual) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of live frame callbacks.
func (m *Manual) PendingFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.frames {
		if !t.cancelled {
			n++
		}
	}
	return n
}
