package ui

import "github.com/spearit/dashboard/pkg/vdom"

// ErrorColor is the foreground of validation errors.
const ErrorColor = "#f5474f"

// ErrorHint renders an inline validation message.
func ErrorHint(message string) *vdom.VNode {
	return vdom.Div(vdom.Class("flex flex-row items-center gap-2 text-["+ErrorColor+"]"), vdom.Role("alert"),
		CircleAlert("w-4 h-4"),
		vdom.P(message),
	)
}
