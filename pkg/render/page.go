package render

import (
	"fmt"
	"io"
)

// RootID is the id of the element whose content the thin client replaces
// on every render frame.
const RootID = "dash-root"

// DefaultClientScript is the path the thin client is served from.
const DefaultClientScript = "/_dash/client.js"

// PageData contains all data needed to render a complete HTML document.
type PageData struct {
	// Body is the pre-rendered markup of the root component.
	Body string

	// Title is the document title.
	Title string

	// SessionID binds the page to its server-side session.
	// Empty for static pages, which then load no client script.
	SessionID string

	// ClientScript is the path to the thin client JavaScript.
	// Defaults to DefaultClientScript.
	ClientScript string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Lang is the language attribute for the html element. Defaults to "en".
	Lang string
}

// WritePage writes a complete HTML document to w.
func WritePage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	pw := &pageWriter{w: w}
	pw.printf("<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang))
	pw.printf("  <meta charset=\"utf-8\">\n")
	pw.printf("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	pw.printf("  <title>%s</title>\n", escapeHTML(page.Title))
	for _, href := range page.StyleSheets {
		pw.printf("  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href))
	}
	for _, style := range page.Styles {
		pw.printf("  <style>%s</style>\n", style)
	}
	pw.printf("</head>\n<body>\n")
	pw.printf("<div id=\"%s\">%s</div>\n", RootID, page.Body)

	if page.SessionID != "" {
		src := page.ClientScript
		if src == "" {
			src = DefaultClientScript
		}
		pw.printf("<script src=\"%s\" data-session=\"%s\" defer></script>\n",
			escapeAttr(src), escapeAttr(page.SessionID))
	}
	pw.printf("</body>\n</html>\n")
	return pw.err
}

// pageWriter remembers the first write error so WritePage reads linearly.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
