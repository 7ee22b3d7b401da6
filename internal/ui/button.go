package ui

import "github.com/spearit/dashboard/pkg/vdom"

// ButtonProps configures a Button render.
type ButtonProps struct {
	ID    string
	Title string
	// Hint is shown above the button while the pointer is over it.
	Hint string
	// DisabledHint replaces Hint while the button is disabled.
	DisabledHint string
	Highlight    bool
	Disabled     bool
	Loading      bool
	Icon         *vdom.VNode
	OnClick      func()
	Class        string
}

// Button is a clickable control that remembers whether the pointer is over
// it. Keep one Button per rendered control.
type Button struct {
	hovered bool
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Render renders the button. A disabled or loading button keeps its click
// handler bound but ignores clicks.
func (b *Button) Render(p ButtonProps) *vdom.VNode {
	inactive := p.Disabled || p.Loading

	hint := p.Hint
	if inactive && p.DisabledHint != "" {
		hint = p.DisabledHint
	}

	icon := p.Icon
	if p.Loading {
		icon = Spinner("w-4 h-4")
	}

	wrapper := []any{vdom.Class("relative flex justify-center items-center")}
	if p.Hint != "" {
		wrapper = append(wrapper,
			vdom.OnPointerEnter(func() { b.hovered = true }),
			vdom.OnPointerLeave(func() { b.hovered = false }),
			Hint(hint, b.hovered, "absolute bottom-full mb-2 w-max"),
		)
	}

	wrapper = append(wrapper, vdom.Button(
		vdom.AttrIf(p.ID != "", vdom.ID(p.ID)),
		vdom.Type("button"),
		vdom.Class("flex gap-2 items-center justify-center font-bold min-w-20 py-3 px-5 rounded-md"),
		vdom.ClassSwitch(p.Highlight, "bg-highlight text-foreground", "bg-foreground"),
		vdom.ClassSwitch(inactive, "opacity-50 cursor-not-allowed", "hover:brightness-75 cursor-pointer"),
		vdom.Class("transition-all shadow-lg duration-200 outline-none", p.Class),
		vdom.DisabledIf(inactive),
		vdom.AttrIf(p.Loading, vdom.AriaBusy(true)),
		vdom.OnClick(func() {
			if !inactive && p.OnClick != nil {
				p.OnClick()
			}
		}),
		vdom.When(icon != nil, func() *vdom.VNode { return vdom.Div(icon) }),
		p.Title,
	))
	return vdom.Div(wrapper...)
}
