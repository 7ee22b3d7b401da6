package ui

import "github.com/spearit/dashboard/pkg/vdom"

// boxStyle is shared by both box variants; only the corner radius and the
// surface color differ.
const boxStyle = "shadow-xl p-5 lg:py-10 lg:px-18 h-fit"

// PrimaryBox is the main surface card.
func PrimaryBox(class string, children ...any) *vdom.VNode {
	return box("rounded-xl bg-foreground", class, children)
}

// SecondaryBox is the muted card used inside a primary one.
func SecondaryBox(class string, children ...any) *vdom.VNode {
	return box("rounded-md bg-secondary", class, children)
}

func box(variant, class string, children []any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class(boxStyle, variant, class)}, children...)...)
}
