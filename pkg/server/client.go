package server

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"

	clientdist "github.com/spearit/dashboard/client/dist"
)

var clientETag = func() string {
	sum := sha256.Sum256(clientdist.DashboardJS)
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:16]))
}()

// serveClient serves the thin client. The URL is not versioned, so caches
// must revalidate with the ETag.
func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", clientETag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")

	if etagMatches(r.Header.Get("If-None-Match"), clientETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(clientdist.DashboardJS)
}

// etagMatches handles lists and weak validators in If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, part := range strings.Split(header, ",") {
		candidate := strings.TrimPrefix(strings.TrimSpace(part), "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}
