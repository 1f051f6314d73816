package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// SecureHeaders sets browser hardening headers for the console. connectOrigins
// are added to the CSP connect-src so the bundle may call the backend directly.
// API responses are never cached.
func SecureHeaders(isProd bool, connectOrigins ...string) func(http.Handler) http.Handler {
	csp := contentSecurityPolicy(connectOrigins)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("Referrer-Policy", "no-referrer")
			headers.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			headers.Set("Content-Security-Policy", csp)
			headers.Set("Cross-Origin-Opener-Policy", "same-origin")
			if strings.HasPrefix(r.URL.Path, "/api/") {
				headers.Set("Cache-Control", "no-store")
			}
			if isProd {
				headers.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contentSecurityPolicy(connectOrigins []string) string {
	connect := []string{"'self'"}
	for _, raw := range connectOrigins {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			continue
		}
		connect = append(connect, parsed.Scheme+"://"+parsed.Host)
	}
	return strings.Join([]string{
		"default-src 'self'",
		"base-uri 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
		"object-src 'none'",
		"img-src 'self' data:",
		"style-src 'self' 'unsafe-inline'",
		"script-src 'self'",
		"connect-src " + strings.Join(connect, " "),
	}, "; ")
}
