// Package vdom provides the server-side component tree for the dashboard.
//
// The tree lives in the session on the server. It is rendered to HTML by
// package render and shipped to the browser whole; there is no client-side
// diffing.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and trusted raw markup. Props holds attributes and
// event handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Repeated Class attributes on one element are joined, so components can
// merge their own classes with a caller-supplied class list.
package vdom
