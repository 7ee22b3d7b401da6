package ui

import "github.com/spearit/dashboard/pkg/vdom"

// icon builds a 24x24 stroked SVG in the currentColor.
func icon(class string, shapes ...any) *vdom.VNode {
	args := []any{
		vdom.ViewBox(0, 0, 24, 24),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth(2),
		vdom.StrokeLinecap("round"),
		vdom.StrokeLinejoin("round"),
		vdom.AriaHidden(true),
		vdom.Class(class),
	}
	return vdom.Svg(append(args, shapes...)...)
}

// CircleAlert is the exclamation-in-circle glyph used by error hints.
func CircleAlert(class string) *vdom.VNode {
	return icon(class,
		vdom.Circle(vdom.Cx(12), vdom.Cy(12), vdom.R(10)),
		vdom.Line(vdom.X1(12), vdom.X2(12), vdom.Y1(8), vdom.Y2(12)),
		vdom.Path(vdom.D("M12 16h.01")),
	)
}

// Eye is the "show password" glyph.
func Eye(class string) *vdom.VNode {
	return icon(class,
		vdom.Path(vdom.D("M2.062 12.348a1 1 0 0 1 0-.696 10.75 10.75 0 0 1 19.876 0 1 1 0 0 1 0 .696 10.75 10.75 0 0 1-19.876 0")),
		vdom.Circle(vdom.Cx(12), vdom.Cy(12), vdom.R(3)),
	)
}

// EyeClosed is the "hide password" glyph.
func EyeClosed(class string) *vdom.VNode {
	return icon(class,
		vdom.Path(vdom.D("m15 18-.722-3.25")),
		vdom.Path(vdom.D("M2 8a10.645 10.645 0 0 0 20 0")),
		vdom.Path(vdom.D("m20 15-1.726-2.05")),
		vdom.Path(vdom.D("m4 15 1.726-2.05")),
		vdom.Path(vdom.D("m9 18 .722-3.25")),
	)
}

// X is the close glyph.
func X(class string) *vdom.VNode {
	return icon(class,
		vdom.Path(vdom.D("M18 6 6 18")),
		vdom.Path(vdom.D("m6 6 12 12")),
	)
}

// Spinner is the loading indicator.
func Spinner(class string) *vdom.VNode {
	return icon("animate-spin "+class,
		vdom.Path(vdom.D("M21 12a9 9 0 1 1-6.219-8.56")),
	)
}
