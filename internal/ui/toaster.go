package ui

import (
	"github.com/spearit/dashboard/pkg/toast"
	"github.com/spearit/dashboard/pkg/vdom"
)

var toastLevelClass = map[toast.Level]string{
	toast.LevelSuccess: "border-l-4 border-green-500",
	toast.LevelError:   "border-l-4 border-[" + ErrorColor + "]",
	toast.LevelWarning: "border-l-4 border-yellow-500",
	toast.LevelInfo:    "border-l-4 border-highlight",
}

// Toaster renders the toast viewport of reg. Dismissed toasts stay rendered
// in their exit state until the registry removes them.
func Toaster(reg *toast.Registry) *vdom.VNode {
	if reg == nil {
		return nil
	}
	return vdom.Div(vdom.ID("toasts"),
		vdom.Class("fixed top-4 right-4 z-50 flex flex-col gap-2 w-80"),
		vdom.AriaLive("polite"),
		vdom.Range(reg.Toasts(), func(t toast.Toast, _ int) *vdom.VNode {
			return toastItem(reg, t)
		}),
	)
}

func toastItem(reg *toast.Registry, t toast.Toast) *vdom.VNode {
	id := t.ID
	return vdom.Div(
		vdom.Key(id),
		vdom.ID("toast-"+id),
		vdom.Data("level", string(t.Level)),
		vdom.Role("status"),
		vdom.Class("flex items-start gap-3 bg-foreground rounded-md shadow-lg p-3 transition-all duration-150", toastLevelClass[t.Level]),
		vdom.ClassSwitch(t.Visible, "opacity-100 translate-x-0", "opacity-0 translate-x-4"),
		vdom.Div(vdom.Class("flex-1"),
			vdom.Strong(vdom.Class("block text-sm"), t.Title),
			vdom.When(t.Message != "", func() *vdom.VNode {
				return vdom.P(vdom.Class("text-sm text-text-gray"), t.Message)
			}),
		),
		vdom.When(t.Visible, func() *vdom.VNode {
			return vdom.Button(vdom.Type("button"),
				vdom.ID("toast-"+id+"-dismiss"),
				vdom.Class("text-text-gray cursor-pointer"),
				vdom.AriaLabel("Dismiss"),
				vdom.OnClick(func() { reg.Dismiss(id) }),
				X("w-4 h-4"),
			)
		}),
	)
}
