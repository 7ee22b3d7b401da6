package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxies matches the addresses of trusted reverse proxies.
type proxies []netip.Prefix

func parseProxies(entries []string, logger *slog.Logger) proxies {
	var out proxies
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				logger.Warn("invalid trusted proxy CIDR", "entry", entry, "error", err)
				continue
			}
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(entry)
		if err != nil {
			logger.Warn("invalid trusted proxy IP", "entry", entry)
			continue
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}
	return out
}

func (p proxies) trusted(a netip.Addr) bool {
	for _, prefix := range p {
		if prefix.Contains(a) {
			return true
		}
	}
	return false
}

// clientIP returns the address sessions are counted against. Forwarding
// headers are only believed when the peer is a trusted proxy; the result is
// the right-most untrusted hop.
func (s *Server) clientIP(r *http.Request) string {
	peer, ok := parseHost(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !s.proxies.trusted(peer) {
		return peer.String()
	}

	hops := forwardedFor(r.Header.Get("Forwarded"))
	if len(hops) == 0 {
		hops = xForwardedFor(r.Header.Get("X-Forwarded-For"))
	}
	if len(hops) == 0 {
		return peer.String()
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if !s.proxies.trusted(hops[i]) {
			return hops[i].String()
		}
	}
	return hops[0].String()
}

// forwardedFor extracts the for= parameters of an RFC 7239 header.
func forwardedFor(header string) []netip.Addr {
	var out []netip.Addr
	for _, element := range strings.Split(header, ",") {
		for _, pair := range strings.Split(element, ";") {
			key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
			if !found || !strings.EqualFold(strings.TrimSpace(key), "for") {
				continue
			}
			if a, ok := parseHost(strings.Trim(strings.TrimSpace(value), `"`)); ok {
				out = append(out, a)
			}
		}
	}
	return out
}

func xForwardedFor(header string) []netip.Addr {
	var out []netip.Addr
	for _, part := range strings.Split(header, ",") {
		if a, ok := parseHost(strings.TrimSpace(part)); ok {
			out = append(out, a)
		}
	}
	return out
}

// parseHost parses "1.2.3.4", "1.2.3.4:80", "[::1]:80" or "::1", dropping
// any zone.
func parseHost(value string) (netip.Addr, bool) {
	if value == "" || strings.EqualFold(value, "unknown") {
		return netip.Addr{}, false
	}
	host := value
	if h, _, err := net.SplitHostPort(value); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if i := strings.IndexByte(host, '%'); i >= 0 {
		host = host[:i]
	}
	a, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return a.Unmap(), true
}
