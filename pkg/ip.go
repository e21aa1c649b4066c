package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the address of the client that sent r, without the port.
// X-Real-Ip and the last X-Forwarded-For hop are only read when trustProxy is set,
// as anyone can send them when the service is reached directly.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); ip != "" {
			return ip
		}
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
