package modal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spearit/dashboard/pkg/schedule"
)

type state struct{ mounted, visible bool }

// newRecorded returns a lifecycle that records every state it passes through.
func newRecorded(sched schedule.Scheduler) (*Lifecycle, *[]state) {
	var history []state
	var l *Lifecycle
	l = New(sched, WithOnChange(func() {
		history = append(history, state{l.Mounted(), l.Visible()})
	}))
	return l, &history
}

func TestOpenRevealsAfterTwoFrames(t *testing.T) {
	sched := schedule.NewManual()
	l, _ := newRecorded(sched)

	l.Open()
	assert.True(t, l.Mounted())
	assert.False(t, l.Visible(), "hidden state must be painted first")

	sched.Frame()
	assert.False(t, l.Visible(), "one frame is not enough")

	sched.Frame()
	assert.True(t, l.Visible())
	assert.True(t, l.Mounted())
}

func TestCloseUnmountsAfterDuration(t *testing.T) {
	sched := schedule.NewManual()
	l, _ := newRecorded(sched)
	l.Open()
	sched.Frame()
	sched.Frame()

	l.Close()
	assert.False(t, l.Visible())
	assert.True(t, l.Mounted(), "exit animation keeps the dialog mounted")

	sched.Advance(DefaultDuration - time.Millisecond)
	assert.True(t, l.Mounted())

	sched.Advance(time.Millisecond)
	assert.False(t, l.Mounted())
	assert.False(t, l.Visible())
}

func TestCloseBeforeOpenCompletes(t *testing.T) {
	sched := schedule.NewManual()
	l, history := newRecorded(sched)

	l.Open()
	sched.Frame()
	l.Close()

	// Drain everything that could still be pending.
	for i := 0; i < 4; i++ {
		sched.Frame()
	}
	sched.Advance(time.Second)
	for i := 0; i < 4; i++ {
		sched.Frame()
	}

	assert.False(t, l.Mounted())
	assert.False(t, l.Visible())
	for _, s := range *history {
		assert.False(t, s.visible, "open state flashed: %+v", *history)
	}
	assert.Equal(t, []state{{true, false}, {false, false}}, *history)
}

func TestReopenDuringCloseCancelsUnmount(t *testing.T) {
	sched := schedule.NewManual()
	l, _ := newRecorded(sched)
	l.Open()
	sched.Frame()
	sched.Frame()

	l.Close()
	sched.Advance(100 * time.Millisecond)
	l.Open()
	sched.Advance(time.Second)

	assert.True(t, l.Mounted(), "stale unmount fired")
	assert.False(t, l.Visible())

	sched.Frame()
	sched.Frame()
	assert.True(t, l.Visible())
}

func TestVisibleImpliesMounted(t *testing.T) {
	sched := schedule.NewManual()
	l, history := newRecorded(sched)

	ops := []func(){
		l.Open, func() { sched.Frame() }, l.Close, l.Open,
		func() { sched.Frame() }, func() { sched.Frame() },
		l.Close, func() { sched.Advance(50 * time.Millisecond) },
		l.Open, func() { sched.Frame() }, func() { sched.Frame() },
		l.Close, func() { sched.Advance(time.Second) },
	}
	prevMounted := false
	for _, op := range ops {
		op()
		if l.Visible() {
			assert.True(t, l.Mounted())
		}
	}
	for _, s := range *history {
		if s.visible {
			require.True(t, s.mounted)
			require.True(t, prevMounted, "visible without passing through mounted")
		}
		prevMounted = s.mounted
	}
	assert.False(t, l.Mounted())
}

func TestDisposeStopsPendingTransition(t *testing.T) {
	sched := schedule.NewManual()
	l, history := newRecorded(sched)

	l.Open()
	l.Dispose()
	sched.Frame()
	sched.Frame()
	assert.False(t, l.Visible())
	assert.Len(t, *history, 1)
	assert.Zero(t, sched.PendingFrames())
}

func TestSetOpenIgnoresRepeats(t *testing.T) {
	sched := schedule.NewManual()
	changes := 0
	l := New(sched, WithOnChange(func() { changes++ }))

	l.SetOpen(false)
	assert.Zero(t, changes)

	l.SetOpen(true)
	sched.Frame()
	l.SetOpen(true)
	sched.Frame()
	assert.True(t, l.Visible(), "repeated open must not restart the sequence")
	assert.Equal(t, 2, changes)
	assert.True(t, l.IsOpen())
}

func TestWithDuration(t *testing.T) {
	sched := schedule.NewManual()
	l := New(sched, WithDuration(time.Second))
	l.Open()
	l.Close()

	sched.Advance(DefaultDuration)
	assert.True(t, l.Mounted())
	sched.Advance(time.Second)
	assert.False(t, l.Mounted())
}
