package ui

import "github.com/spearit/dashboard/pkg/vdom"

// Hint renders a tooltip bubble with a downward arrow. The parent owns
// visibility: a hidden hint stays in the tree at zero opacity so it can fade.
func Hint(text string, show bool, class string) *vdom.VNode {
	return vdom.Div(
		vdom.Class(class),
		vdom.ClassSwitch(show, "opacity-100", "opacity-0"),
		vdom.Class("transition-opacity duration-200"),
		vdom.Role("tooltip"),
		vdom.AriaHidden(!show),
		vdom.Div(vdom.Class("relative bg-foreground rounded-md p-2 shadow-lg"),
			vdom.P(vdom.Class("max-w-60 text-sm wrap-break-word"), text),
			vdom.Div(vdom.Class("absolute left-1/2 -translate-x-1/2 top-full w-0 h-0 border-l-[6px] border-l-transparent border-r-[6px] border-r-transparent border-t-8 border-t-foreground")),
		),
	)
}
