package common

import (
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP returns the caller address from r.RemoteAddr without the port.
// Proxy headers are not consulted here; the router runs chi's RealIP
// middleware, which rewrites RemoteAddr from X-Real-IP or X-Forwarded-For.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	addr := strings.TrimSpace(r.RemoteAddr)
	if ap, err := netip.ParseAddrPort(addr); err == nil {
		return ap.Addr().Unmap().String()
	}
	if ip, err := netip.ParseAddr(addr); err == nil {
		return ip.Unmap().String()
	}
	return addr
}
