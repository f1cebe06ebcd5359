// Package clientip resolves the originating client address of a request.
//
// Proxy headers are honoured only when the service is told it runs behind a
// trusted proxy; otherwise the TCP peer address is used, since clients can
// set any header they like.
package clientip

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order when proxies are trusted.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the client IP, or an empty string if none can be parsed.
// With trustProxy set, the first valid address from X-Forwarded-For or
// X-Real-IP wins over RemoteAddr.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range proxyHeaders {
			for ip := range strings.SplitSeq(r.Header.Get(h), ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware or an empty string.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved client IP in the request context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromRequest(r, trustProxy)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}
