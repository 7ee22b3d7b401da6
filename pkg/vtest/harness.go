package vtest

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spearit/dashboard/pkg/doctitle"
	"github.com/spearit/dashboard/pkg/render"
	"github.com/spearit/dashboard/pkg/schedule"
	"github.com/spearit/dashboard/pkg/toast"
	"github.com/spearit/dashboard/pkg/vdom"
)

// epoch is the wall clock the harness toasts start from.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Harness drives a component the way a session does, without goroutines or
// a browser: events are fired directly at handlers, timers and frames run
// on a manual scheduler, and the tree is re-rendered after every step.
type Harness struct {
	t testing.TB

	Sched   *schedule.Manual
	Titles  *doctitle.Recorder
	Toasts  *toast.Registry
	Limiter *toast.Limiter

	root     vdom.Component
	renderer *render.Renderer
	tree     *vdom.VNode
	html     string
	handlers render.Handlers
}

// NewHarness creates a harness with a manual scheduler, a title recorder
// and a limited toast registry with predictable IDs.
func NewHarness(t testing.TB) *Harness {
	t.Helper()
	sched := schedule.NewManual()
	ids := 0
	reg := toast.NewRegistry(sched,
		toast.WithClock(func() time.Time { return epoch.Add(sched.Now()) }),
		toast.WithIDs(func() string {
			ids++
			return "t" + strconv.Itoa(ids)
		}),
	)
	lim := toast.NewLimiter(reg)
	t.Cleanup(lim.Watch(reg))

	return &Harness{
		t:        t,
		Sched:    sched,
		Titles:   &doctitle.Recorder{},
		Toasts:   reg,
		Limiter:  lim,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
}

// Mount sets the root component and renders it.
func (h *Harness) Mount(root vdom.Component) *Harness {
	h.root = root
	h.Render()
	return h
}

// Render re-renders the root and returns the markup.
func (h *Harness) Render() string {
	h.t.Helper()
	if h.root == nil {
		h.t.Fatal("vtest: no component mounted")
	}
	h.tree = h.root.Render()
	html, handlers, err := h.renderer.Render(h.tree)
	if err != nil {
		h.t.Fatalf("vtest: render failed: %v", err)
	}
	h.html, h.handlers = html, handlers
	return html
}

// HTML returns the markup of the last render.
func (h *Harness) HTML() string { return h.html }

// Contains reports whether the last render contains s.
func (h *Harness) Contains(s string) bool { return strings.Contains(h.html, s) }

// Find returns the first element of the last render matching pred, or nil.
func (h *Harness) Find(pred func(*vdom.VNode) bool) *vdom.VNode {
	return vdom.Find(h.tree, pred)
}

// ByID returns the element with the given id attribute. The test fails if
// there is none.
func (h *Harness) ByID(id string) *vdom.VNode {
	h.t.Helper()
	n := h.Find(func(n *vdom.VNode) bool {
		v, _ := n.Props["id"].(string)
		return v == id
	})
	if n == nil {
		h.t.Fatalf("vtest: no element with id %q in:\n%s", id, truncate(h.html, 500))
	}
	return n
}

// HasID reports whether an element with the given id was rendered.
func (h *Harness) HasID(id string) bool {
	return h.Find(func(n *vdom.VNode) bool {
		v, _ := n.Props["id"].(string)
		return v == id
	}) != nil
}

// ByText returns the innermost interactive element whose text is text. The
// test fails if there is none.
func (h *Harness) ByText(text string) *vdom.VNode {
	h.t.Helper()
	var found *vdom.VNode
	vdom.Walk(h.tree, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.IsInteractive() && TextOf(n) == text {
			found = n
		}
		return true
	})
	if found == nil {
		h.t.Fatalf("vtest: no interactive element with text %q in:\n%s", text, truncate(h.html, 500))
	}
	return found
}

// Fire invokes the node's handler for event and re-renders. The test fails
// if the node has no such handler.
func (h *Harness) Fire(node *vdom.VNode, event, value string) {
	h.t.Helper()
	handler := h.handlers.Lookup(node.HID, event)
	switch fn := handler.(type) {
	case func():
		fn()
	case func(string):
		fn(value)
	default:
		h.t.Fatalf("vtest: <%s> %s has no %s handler", node.Tag, node.HID, event)
	}
	h.Render()
}

// Click fires a click.
func (h *Harness) Click(node *vdom.VNode) { h.t.Helper(); h.Fire(node, "click", "") }

// Type fires an input event carrying value.
func (h *Harness) Type(node *vdom.VNode, value string) { h.t.Helper(); h.Fire(node, "input", value) }

// Blur fires a blur event carrying the input's value.
func (h *Harness) Blur(node *vdom.VNode, value string) { h.t.Helper(); h.Fire(node, "blur", value) }

// Hover fires pointerenter, or pointerleave when on is false.
func (h *Harness) Hover(node *vdom.VNode, on bool) {
	h.t.Helper()
	if on {
		h.Fire(node, "pointerenter", "")
	} else {
		h.Fire(node, "pointerleave", "")
	}
}

// Advance moves the manual clock forward and re-renders.
func (h *Harness) Advance(d time.Duration) {
	h.t.Helper()
	h.Sched.Advance(d)
	h.Render()
}

// Frame runs one animation frame and re-renders.
func (h *Harness) Frame() {
	h.t.Helper()
	h.Sched.Frame()
	h.Render()
}

// Title returns the last document title written.
func (h *Harness) Title() string { return h.Titles.Title() }
