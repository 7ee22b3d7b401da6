package ui

import (
	"github.com/spearit/dashboard/pkg/modal"
	"github.com/spearit/dashboard/pkg/vdom"
)

// ModalProps configures a Modal view.
type ModalProps struct {
	ID    string
	Title string
	// OnClose is called when the backdrop or the close glyph is clicked.
	OnClose func()
}

// Modal renders the dialog driven by lc. It renders nothing while lc is
// unmounted and never changes lc itself: close requests go to OnClose.
func Modal(lc *modal.Lifecycle, p ModalProps, children ...any) *vdom.VNode {
	if lc == nil || !lc.Mounted() {
		return nil
	}
	visible := lc.Visible()

	onClose := func() {
		if p.OnClose != nil {
			p.OnClose()
		}
	}

	return vdom.Div(
		vdom.AttrIf(p.ID != "", vdom.ID(p.ID)),
		vdom.Class("fixed inset-0 z-50 flex items-center justify-center transition-opacity duration-150"),
		vdom.ClassSwitch(visible, "opacity-100", "opacity-0 pointer-events-none"),
		vdom.Role("dialog"),
		vdom.AriaModal(true),
		vdom.AttrIf(p.Title != "", vdom.AriaLabel(p.Title)),
		vdom.Div(
			vdom.AttrIf(p.ID != "", vdom.ID(p.ID+"-backdrop")),
			vdom.Class("absolute inset-0 bg-black/30 backdrop-blur-lg transition-opacity duration-150"),
			vdom.ClassSwitch(visible, "opacity-100", "opacity-0"),
			vdom.OnClick(onClose),
		),
		vdom.Div(
			vdom.Class("relative z-10 w-full max-w-lg mx-4 bg-foreground rounded-md shadow-lg max-h-[80vh] overflow-y-auto transform transition-all duration-150"),
			vdom.ClassSwitch(visible, "opacity-100 scale-100 translate-y-0", "opacity-0 scale-95 translate-y-2"),
			vdom.Div(vdom.Class("flex justify-between items-center sticky top-0 bg-foreground py-3 px-5 shadow-2xl"),
				vdom.P(vdom.Class("uppercase font-bold text-md"), p.Title),
				vdom.Div(
					vdom.AttrIf(p.ID != "", vdom.ID(p.ID+"-close")),
					vdom.Class("cursor-pointer select-none p-2"),
					vdom.AriaLabel("Close"),
					vdom.OnClick(onClose),
					"×",
				),
			),
			vdom.Div(append([]any{vdom.Class("px-6 py-3")}, children...)...),
		),
	)
}
