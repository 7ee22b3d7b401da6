// Package render provides server-side rendering for dashboard components.
//
// The render package converts VNode trees into HTML, handling:
//
//   - Text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, required, etc.)
//   - Hydration IDs for elements with event handlers
//   - Full document rendering with the thin client script
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, handlers, err := renderer.Render(node)
//
// Every element that carries an event handler receives a data-hid attribute
// and a data-on attribute listing its events. The handlers are returned so a
// session can route incoming client events back to Go functions.
//
// # Full Page Rendering
//
//	err := render.WritePage(w, render.PageData{
//	    Body:      html,
//	    Title:     "Login - Spearit Dashboard",
//	    SessionID: sess.ID,
//	})
package render
