// Package doctitle formats and publishes the browser document title.
package doctitle

import "sync"

// Suffix is appended to every page title.
const Suffix = "Spearit Dashboard"

// Format returns the document title for a page title.
func Format(title string) string {
	if title == "" {
		return Suffix
	}
	return title + " - " + Suffix
}

// Setter receives document titles. The last write wins.
type Setter interface {
	SetTitle(title string)
}

// Apply formats title and writes it to s. A nil Setter is ignored.
func Apply(s Setter, title string) {
	if s == nil {
		return
	}
	s.SetTitle(Format(title))
}

// Recorder is a Setter that remembers every title it was given.
type Recorder struct {
	mu     sync.Mutex
	titles []string
}

// SetTitle implements Setter.
func (r *Recorder) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
}

// Title returns the most recent title, or "".
func (r *Recorder) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

// Titles returns every title in write order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}
