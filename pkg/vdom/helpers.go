package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Raw creates an unescaped markup node. Only for trusted, static content.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}

// Walk visits node and its descendants depth-first, expanding components.
// Returning false from fn stops the descent below that node.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), fn)
		}
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// Find returns the first element in the tree matching pred.
func Find(node *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}
