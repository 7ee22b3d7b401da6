package vdom

import (
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Empty entries are skipped.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaInvalid sets the aria-invalid attribute.
func AriaInvalid(invalid bool) Attr { return attr("aria-invalid", invalid) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaBusy sets the aria-busy attribute.
func AriaBusy(busy bool) Attr { return attr("aria-busy", busy) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// DisabledIf sets the disabled attribute when cond holds.
func DisabledIf(cond bool) Attr { return AttrIf(cond, Disabled()) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// SVG presentation attributes

// ViewBox sets the viewBox attribute.
func ViewBox(minX, minY, width, height int) Attr {
	return attr("viewBox", fmt.Sprintf("%d %d %d %d", minX, minY, width, height))
}

// Fill sets the fill attribute.
func Fill(color string) Attr { return attr("fill", color) }

// Stroke sets the stroke attribute.
func Stroke(color string) Attr { return attr("stroke", color) }

// StrokeWidth sets the stroke-width attribute.
func StrokeWidth(w int) Attr { return attr("stroke-width", w) }

// StrokeLinecap sets the stroke-linecap attribute.
func StrokeLinecap(v string) Attr { return attr("stroke-linecap", v) }

// StrokeLinejoin sets the stroke-linejoin attribute.
func StrokeLinejoin(v string) Attr { return attr("stroke-linejoin", v) }

// D sets the path data attribute.
func D(data string) Attr { return attr("d", data) }

// Cx, Cy and R set circle geometry.
func Cx(v int) Attr { return attr("cx", v) }
func Cy(v int) Attr { return attr("cy", v) }
func R(v int) Attr  { return attr("r", v) }

// X1, Y1, X2 and Y2 set line geometry.
func X1(v int) Attr { return attr("x1", v) }
func Y1(v int) Attr { return attr("y1", v) }
func X2(v int) Attr { return attr("x2", v) }
func Y2(v int) Attr { return attr("y2", v) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// ClassSwitch picks one of two class lists.
func ClassSwitch(condition bool, ifTrue, ifFalse string) Attr {
	if condition {
		return attr("class", ifTrue)
	}
	return attr("class", ifFalse)
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
