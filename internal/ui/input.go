package ui

import "github.com/spearit/dashboard/pkg/vdom"

// InputProps configures an Input.
type InputProps struct {
	ID          string
	Title       string
	Placeholder string
	Type        string
	Value       string
	// Icon is rendered after the field; OnIconClick makes it clickable.
	Icon    *vdom.VNode
	Errored bool
	Class   string

	// OnChange receives the value on every keystroke.
	OnChange    func(value string)
	OnBlur      func(value string)
	OnFocus     func()
	OnIconClick func()
}

// Input renders a labelled text field in a bordered container.
func Input(p InputProps) *vdom.VNode {
	field := []any{
		vdom.Class("w-full px-3 py-2 text-sm text-text-primary placeholder:text-text-gray outline-none bg-transparent"),
		vdom.Type(p.Type),
		vdom.Placeholder(p.Placeholder),
		vdom.Value(p.Value),
		vdom.AttrIf(p.ID != "", vdom.ID(p.ID)),
		vdom.AttrIf(p.Errored, vdom.AriaInvalid(true)),
	}
	if p.OnChange != nil {
		field = append(field, vdom.OnInput(p.OnChange))
	}
	if p.OnBlur != nil {
		field = append(field, vdom.OnBlur(p.OnBlur))
	}
	if p.OnFocus != nil {
		field = append(field, vdom.OnFocus(p.OnFocus))
	}

	var trailing *vdom.VNode
	if p.Icon != nil {
		iconArgs := []any{vdom.Class("pr-3 text-text-gray"), p.Icon}
		if p.OnIconClick != nil {
			iconArgs = append(iconArgs, vdom.Class("cursor-pointer"), vdom.OnClick(p.OnIconClick))
			if p.ID != "" {
				iconArgs = append(iconArgs, vdom.ID(p.ID+"-icon"))
			}
		}
		trailing = vdom.Div(iconArgs...)
	}

	return vdom.Div(vdom.Class("flex flex-col gap-1 relative"),
		vdom.When(p.Title != "", func() *vdom.VNode {
			return vdom.Label(vdom.Class("text-xs text-text-primary uppercase select-none"),
				vdom.AttrIf(p.ID != "", vdom.For(p.ID)),
				p.Title,
			)
		}),
		vdom.Div(
			vdom.Class("flex flex-row items-center w-full border bg-foreground rounded-md"),
			vdom.ClassSwitch(p.Errored, "border-["+ErrorColor+"]", "border-secondary"),
			vdom.Class(p.Class),
			vdom.Input(field...),
			trailing,
		),
	)
}
