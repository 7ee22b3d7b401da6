package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"plain element", Div(Class("x")), false},
		{"button with click", Button(OnClick(func() {})), true},
		{"input with blur", Input(OnBlur(func(string) {})), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeHandler(t *testing.T) {
	called := false
	node := Button(OnClick(func() { called = true }))

	h, ok := node.Handler("click").(func())
	if !ok {
		t.Fatalf("Handler(click) = %T, want func()", node.Handler("click"))
	}
	h()
	if !called {
		t.Error("handler was not invoked")
	}
	if node.Handler("input") != nil {
		t.Error("Handler(input) should be nil")
	}
	var nilNode *VNode
	if nilNode.Handler("click") != nil {
		t.Error("nil node should have no handler")
	}
}

func TestFuncComponent(t *testing.T) {
	comp := Func(func() *VNode { return P(Text("hi")) })
	node := Div(comp)

	if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
		t.Fatalf("expected one component child, got %+v", node.Children)
	}
	if got := node.Children[0].Comp.Render().Tag; got != "p" {
		t.Errorf("rendered tag = %q, want p", got)
	}
}

func TestEventConstructors(t *testing.T) {
	onValue := func(string) {}
	node := Input(OnInput(onValue), OnBlur(onValue), OnFocus(func() {}))

	for _, ev := range []string{"input", "blur", "focus"} {
		if node.Handler(ev) == nil {
			t.Errorf("Handler(%q) = nil", ev)
		}
	}
	if _, ok := node.Props["oninput"].(func(string)); !ok {
		t.Errorf("oninput = %T, want func(string)", node.Props["oninput"])
	}
}
