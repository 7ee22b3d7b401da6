package pages

import (
	"github.com/spearit/dashboard/internal/ui"
	. "github.com/spearit/dashboard/pkg/vdom"
)

// NotFound is shown for every unknown path.
type NotFound struct {
	env  Env
	path string
}

// NewNotFound creates the not-found page for path.
func NewNotFound(env Env, path string) *NotFound {
	return &NotFound{env: env, path: path}
}

func (p *NotFound) Render() *VNode {
	return ui.Page(p.env.Title, ui.PageProps{Title: "Not Found", LimitWidth: true, Class: "p-12 flex justify-center items-center"},
		ui.PrimaryBox("flex flex-col items-center gap-5",
			ui.Logo(ui.LogoProps{Size: 40}),
			H1(Class("text-4xl font-bold tracking-widest"), "404"),
			P(Class("text-sm text-text-gray"), "Nothing lives at ", Code(p.path), "."),
			A(ID("notfound-login"), Href("/login"), Class("underline"), "Back to login"),
		),
	)
}
