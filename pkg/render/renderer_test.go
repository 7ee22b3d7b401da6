package render

import (
	"strings"
	"testing"

	"github.com/spearit/dashboard/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"; html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "void element with sorted attributes",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "empty value is kept",
			node: vdom.Input(vdom.Value("")),
			want: `<input value="">`,
		},
		{
			name: "boolean true",
			node: vdom.Button(vdom.Disabled()),
			want: `<button disabled></button>`,
		},
		{
			name: "boolean false omitted",
			node: vdom.Button(vdom.Attr{Key: "disabled", Value: false}),
			want: `<button></button>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.TitleAttr("a \"b\"\nc")),
			want: `<div title="a &quot;b&quot;&#10;c"></div>`,
		},
		{
			name: "numeric attribute",
			node: vdom.Svg(vdom.Width(24)),
			want: `<svg width="24"></svg>`,
		},
		{
			name: "key is not rendered",
			node: vdom.Li(vdom.Key("k1")),
			want: `<li></li>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := NewRenderer(RendererConfig{}).RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderFragmentComponentRaw(t *testing.T) {
	node := vdom.Div(
		vdom.Fragment(vdom.Span(vdom.Text("a")), vdom.Span(vdom.Text("b"))),
		vdom.Func(func() *vdom.VNode { return vdom.P(vdom.Text("comp")) }),
		vdom.Raw(`<svg></svg>`),
	)
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><span>a</span><span>b</span><p>comp</p><svg></svg></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderCollectsHandlers(t *testing.T) {
	clicks := 0
	var typed string
	node := vdom.Div(
		vdom.Button(vdom.OnClick(func() { clicks++ }), vdom.Text("go")),
		vdom.Input(vdom.OnInput(func(v string) { typed = v }), vdom.OnBlur(func() {})),
	)

	html, handlers, err := NewRenderer(RendererConfig{}).Render(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<button data-hid="h1" data-on="click">go</button>`) {
		t.Errorf("button markup missing hid: %s", html)
	}
	if !strings.Contains(html, `data-hid="h2" data-on="blur input"`) {
		t.Errorf("input markup missing events: %s", html)
	}

	handlers.Lookup("h1", "click").(func())()
	handlers.Lookup("h2", "input").(func(string))("abc")
	if clicks != 1 || typed != "abc" {
		t.Errorf("clicks=%d typed=%q", clicks, typed)
	}
	if handlers.Lookup("h9", "click") != nil {
		t.Error("unknown hid should have no handler")
	}
	var empty Handlers
	if empty.Lookup("h1", "click") != nil {
		t.Error("nil registry lookup should be nil")
	}
}

func TestRenderResetsBetweenPasses(t *testing.T) {
	r := NewRenderer(RendererConfig{HIDPrefix: "x"})
	node := vdom.Button(vdom.OnClick(func() {}))

	for i := 0; i < 2; i++ {
		html, handlers, err := r.Render(node)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, `data-hid="x1"`) {
			t.Errorf("pass %d: got %s", i, html)
		}
		if len(handlers) != 1 {
			t.Errorf("pass %d: handlers = %d, want 1", i, len(handlers))
		}
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.KindElement})
	if err == nil {
		t.Error("expected error for element without tag")
	}
}
