package ui

import (
	"github.com/spearit/dashboard/pkg/doctitle"
	"github.com/spearit/dashboard/pkg/vdom"
)

// PageProps configures a Page.
type PageProps struct {
	Title string
	// LimitWidth narrows the content column on wide screens.
	LimitWidth bool
	// Background adds the animated backdrop layer behind the content.
	Background bool
	Class      string
}

// Page renders the full-viewport shell and writes the document title to
// title on every render.
func Page(title doctitle.Setter, p PageProps, children ...any) *vdom.VNode {
	doctitle.Apply(title, p.Title)

	width := "w-full"
	if p.LimitWidth {
		width = "max-w-[90vw] w-[90vw] lg:max-w-[50vw] lg:w-[50vw]"
	}

	return vdom.Div(vdom.Class("w-screen h-screen flex justify-center"),
		vdom.If(p.Background, vdom.Div(vdom.Class("page-background fixed inset-0 -z-10"), vdom.AriaHidden(true))),
		vdom.Div(append([]any{vdom.Class(width, p.Class)}, children...)...),
	)
}
