package audit

import "context"

type contextKey struct{}

var sourceIPKey contextKey

// WithSourceIP stores the request's remote address so audit entries can
// record where a change came from.
func WithSourceIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, sourceIPKey, ip)
}

// SourceIPFromContext returns the stored remote address, if any.
func SourceIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(sourceIPKey).(string)
	return ip, ok && ip != ""
}
