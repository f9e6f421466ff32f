package middlewares

import (
	"clinic-portal/internal/pkg/constvars"
	"net/http"
)

// SecurityHeaders adds security-related HTTP headers to all responses.
func (m *Middlewares) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(constvars.HeaderXContentTypeOptions, "nosniff")
		h.Set(constvars.HeaderXFrameOptions, "DENY")
		h.Set(constvars.HeaderContentSecurityPolicy, "default-src 'self'; frame-ancestors 'none'; form-action 'self'")
		h.Set(constvars.HeaderReferrerPolicy, "strict-origin-when-cross-origin")
		if m.InternalConfig.App.SecureCookie {
			h.Set(constvars.HeaderStrictTransportSecurity, "max-age=63072000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}
