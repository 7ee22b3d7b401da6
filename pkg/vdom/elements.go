package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string, EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// setAttr applies a single attribute. Repeated class attributes are joined
// so components can append to a caller-supplied class list.
func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	if a.Key == "class" {
		next, _ := a.Value.(string)
		if prev, ok := v.Props["class"].(string); ok && prev != "" {
			if next == "" {
				return
			}
			v.Props["class"] = prev + " " + next
			return
		}
	}
	v.Props[a.Key] = a.Value
}

// Sectioning and text content

func H1(args ...any) *VNode   { return createElement("h1", args) }
func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }

// Inline text semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }

// Form elements

func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }

// Vector elements

func Svg(args ...any) *VNode    { return createElement("svg", args) }
func Path(args ...any) *VNode   { return createElement("path", args) }
func Circle(args ...any) *VNode { return createElement("circle", args) }
func Line(args ...any) *VNode   { return createElement("line", args) }
