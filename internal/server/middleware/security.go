package middleware

import (
	"fmt"
	"net/http"
)

// SecurityHeaders adds the standard protective response headers
type SecurityHeaders struct {
	HSTSMaxAge            int
	ContentSecurityPolicy string
}

// Handler returns the security headers middleware handler
func (s *SecurityHeaders) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		if s.HSTSMaxAge > 0 {
			w.Header().Set("Strict-Transport-Security", fmt.Sprintf("max-age=%d; includeSubDomains", s.HSTSMaxAge))
		}
		if s.ContentSecurityPolicy != "" {
			w.Header().Set("Content-Security-Policy", s.ContentSecurityPolicy)
		}

		next.ServeHTTP(w, r)
	})
}
