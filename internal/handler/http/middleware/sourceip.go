package middleware

import (
	"net"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
)

// SourceIP stashes the client address in the request context so the audit
// trail can attribute changes. Runs after chi's RealIP.
func SourceIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		next.ServeHTTP(w, r.WithContext(audit.WithSourceIP(r.Context(), ip)))
	})
}
