package pages

import (
	"net/http"
	"strings"

	"github.com/spearit/dashboard/pkg/vdom"
)

// Route maps a path to the page built for it.
type Route struct {
	Path  string
	Build func(env Env) vdom.Component
}

// Routes returns the route table. Paths not listed here render NotFound.
func Routes() []Route {
	return []Route{
		{Path: "/login", Build: func(env Env) vdom.Component { return NewLogin(env) }},
		{Path: "/signup", Build: func(env Env) vdom.Component { return NewSignup(env) }},
	}
}

// Match returns the page builder for path and the HTTP status to serve it
// with. A trailing slash is ignored.
func Match(path string) (build func(env Env) vdom.Component, status int) {
	clean := path
	if len(clean) > 1 {
		clean = strings.TrimRight(clean, "/")
	}
	for _, r := range Routes() {
		if r.Path == clean {
			return r.Build, http.StatusOK
		}
	}
	return func(env Env) vdom.Component { return NewNotFound(env, path) }, http.StatusNotFound
}
