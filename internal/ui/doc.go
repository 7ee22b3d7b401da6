// Package ui holds the dashboard's presentational components.
//
// Components are plain functions returning *vdom.VNode, so pages compose
// them directly and tests can walk the same tree the session renders.
// Button is the exception: it keeps its own hover state and is held by the
// page that renders it.
//
// Visual tokens (bg-foreground, text-text-primary, border-secondary, ...)
// refer to the theme's CSS custom properties; the theme itself is served
// with the page stylesheet.
package ui
