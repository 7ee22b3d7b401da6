package ui

import (
	"fmt"

	"github.com/spearit/dashboard/pkg/vdom"
)

// LogoProps configures a Logo. Zero values pick the theme text color and a
// 24px mark.
type LogoProps struct {
	Color    string
	Size     int
	ShowText bool
	Class    string
}

// logoMark is the spearhead outline of the brand mark.
const logoMark = "M12 1 L19 9 L14.5 9 L14.5 23 L9.5 23 L9.5 9 L5 9 Z"

// Logo renders the brand mark, optionally followed by the "SpearIT" label.
func Logo(p LogoProps) *vdom.VNode {
	if p.Color == "" {
		p.Color = "var(--color-text-primary)"
	}
	if p.Size <= 0 {
		p.Size = 24
	}

	return vdom.Div(vdom.Class("flex flex-row items-center", p.Class),
		vdom.Svg(
			vdom.ViewBox(0, 0, 24, 24),
			vdom.Width(p.Size),
			vdom.Height(p.Size),
			vdom.StyleAttr(fmt.Sprintf("fill: %s; color: %s", p.Color, p.Color)),
			vdom.Role("img"),
			vdom.AriaLabel("SpearIT"),
			vdom.Path(vdom.D(logoMark)),
		),
		vdom.When(p.ShowText, func() *vdom.VNode {
			return vdom.Span(vdom.Class("select-none"),
				vdom.StyleAttr(fmt.Sprintf("color: %s; font-size: %gpx; margin-left: 8px; font-weight: bold", p.Color, float64(p.Size)*0.5)),
				"SpearIT",
			)
		}),
	)
}
