package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const (
	ClientIPKey  contextKey = "client_ip"
	UserAgentKey contextKey = "user_agent"
)

// RequestMeta captures the network origin of the request so the audit
// ledger can record it without touching *http.Request.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, clientIP(r))
		ctx = context.WithValue(ctx, UserAgentKey, r.UserAgent())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the originating client.
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// GetClientIPFromContext extracts the originating IP address.
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ClientIPKey).(string)
	return ip, ok
}

// GetUserAgentFromContext extracts the request user agent.
func GetUserAgentFromContext(ctx context.Context) (string, bool) {
	ua, ok := ctx.Value(UserAgentKey).(string)
	return ua, ok
}
