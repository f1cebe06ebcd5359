package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userapi/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", "192.0.2.10:5555", nil, false, "192.0.2.10"},
		{"remote without port", "192.0.2.10", nil, false, "192.0.2.10"},
		{"ipv6 remote", "[2001:db8::1]:443", nil, false, "2001:db8::1"},
		{"headers ignored when untrusted", "192.0.2.10:1", map[string]string{"X-Forwarded-For": "203.0.113.7"}, false, "192.0.2.10"},
		{"forwarded first valid", "192.0.2.10:1", map[string]string{"X-Forwarded-For": "bogus, 203.0.113.7, 198.51.100.1"}, true, "203.0.113.7"},
		{"real ip fallback", "192.0.2.10:1", map[string]string{"X-Real-IP": "198.51.100.2"}, true, "198.51.100.2"},
		{"invalid headers fall back to remote", "192.0.2.10:1", map[string]string{"X-Forwarded-For": "nope", "X-Real-IP": "also-nope"}, true, "192.0.2.10"},
		{"garbage remote", "not-an-ip", nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r, tt.trustProxy))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.9", got)
}
