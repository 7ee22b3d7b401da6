package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spearit/dashboard/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// HIDPrefix is prepended to generated hydration IDs. Defaults to "h".
	HIDPrefix string
}

// Handlers maps a hydration ID to the handlers bound on that element,
// keyed by event name without the "on" prefix.
type Handlers map[string]map[string]any

// Lookup returns the handler for hid and event, or nil.
func (h Handlers) Lookup(hid, event string) any {
	if h == nil {
		return nil
	}
	return h[hid][event]
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer is not safe for concurrent use; sessions own one each.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   Handlers
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.HIDPrefix == "" {
		config.HIDPrefix = "h"
	}
	return &Renderer{
		config:   config,
		handlers: make(Handlers),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// Render resets the renderer, renders node, and returns the markup
// together with the handlers collected during the pass.
func (r *Renderer) Render(node *vdom.VNode) (string, Handlers, error) {
	r.Reset()
	html, err := r.RenderToString(node)
	if err != nil {
		return "", nil, err
	}
	return html, r.handlers, nil
}

// Handlers returns the handler registry collected during rendering.
func (r *Renderer) Handlers() Handlers {
	return r.handlers
}

// Reset clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(Handlers)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node)
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render())
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element without tag")
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}

	events, err := r.renderAttributes(w, node)
	if err != nil {
		return err
	}

	if len(events) > 0 {
		hid := r.nextHID()
		node.HID = hid
		r.registerHandlers(hid, node, events)
		if _, err := fmt.Fprintf(w, ` data-hid="%s" data-on="%s"`, hid, strings.Join(events, " ")); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if vdom.IsVoidElement(tag) {
		return nil
	}

	if err := r.renderChildren(w, node); err != nil {
		return err
	}

	_, err = io.WriteString(w, "</"+tag+">")
	return err
}

// renderAttributes writes the element's attributes in sorted order and
// returns the names of the events it handles.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) ([]string, error) {
	if len(node.Props) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		if key == "key" || strings.HasPrefix(key, "_") {
			continue
		}
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			events = append(events, key[2:])
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return nil, err
					}
				}
				continue
			}
		}

		s := attrToString(value)
		if s == "" && key != "value" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// nextHID generates the next sequential hydration ID.
func (r *Renderer) nextHID() string {
	r.hidCounter++
	return r.config.HIDPrefix + strconv.FormatUint(uint64(r.hidCounter), 10)
}

// registerHandlers stores handler references for the given HID.
func (r *Renderer) registerHandlers(hid string, node *vdom.VNode, events []string) {
	m := make(map[string]any, len(events))
	for _, ev := range events {
		m[ev] = node.Props["on"+ev]
	}
	r.handlers[hid] = m
}

// isEventHandler returns true if the value is a supported handler shape.
func isEventHandler(value any) bool {
	switch value.(type) {
	case func(), func(string):
		return true
	default:
		return false
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
