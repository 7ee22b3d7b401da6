package vtest

import (
	"strings"
	"testing"

	"github.com/spearit/dashboard/pkg/render"
	"github.com/spearit/dashboard/pkg/vdom"
)

// RenderToString renders a VNode to HTML for testing. Render errors yield "".
//
// Example:
//
//	html := vtest.RenderToString(ui.ErrorHint("Please enter a valid email"))
//	if !strings.Contains(html, "valid email") {
//	    t.Error("missing message")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, ui.Hint("Copy", true, ""), "opacity-100")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, ui.Input(props), "type", "password")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// TextOf returns the concatenated text below node.
func TextOf(node *vdom.VNode) string {
	var b strings.Builder
	vdom.Walk(node, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return strings.TrimSpace(b.String())
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
