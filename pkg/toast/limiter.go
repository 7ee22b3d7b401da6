package toast

import "sort"

// DefaultLimit is the number of toasts a Limiter keeps visible.
const DefaultLimit = 3

// Limit returns the ids of the visible toasts beyond the n most recently
// created ones. Equal timestamps are ordered by position, later meaning
// newer. Limit does not modify toasts.
func Limit(toasts []Toast, n int) []string {
	if n < 0 {
		n = 0
	}

	type ranked struct {
		Toast
		pos int
	}
	visible := make([]ranked, 0, len(toasts))
	for i, t := range toasts {
		if t.Visible {
			visible = append(visible, ranked{t, i})
		}
	}
	if len(visible) <= n {
		return nil
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.pos > b.pos
	})

	excess := make([]string, 0, len(visible)-n)
	for _, t := range visible[n:] {
		excess = append(excess, t.ID)
	}
	return excess
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithLimit sets the maximum number of visible toasts.
func WithLimit(n int) LimiterOption {
	return func(l *Limiter) { l.limit = n }
}

// Limiter bounds the number of simultaneously visible toasts in a registry.
type Limiter struct {
	reg   Dismisser
	limit int
}

// NewLimiter creates a limiter over reg with DefaultLimit.
func NewLimiter(reg Dismisser, opts ...LimiterOption) *Limiter {
	l := &Limiter{reg: reg, limit: DefaultLimit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the current limit.
func (l *Limiter) Limit() int { return l.limit }

// SetLimit changes the limit and applies it, returning the number of toasts
// dismissed.
func (l *Limiter) SetLimit(n int) int {
	l.limit = n
	return l.Apply()
}

// Apply dismisses the excess toasts and returns how many were dismissed.
// Applying to a compliant set dismisses nothing.
func (l *Limiter) Apply() int {
	dismissed := 0
	for _, id := range Limit(l.reg.Toasts(), l.limit) {
		if l.reg.Dismiss(id) {
			dismissed++
		}
	}
	return dismissed
}

// Watch applies the limit now and again after every change to w. The
// returned function stops watching.
func (l *Limiter) Watch(w Watchable) func() {
	l.Apply()
	return w.Subscribe(func() { l.Apply() })
}
