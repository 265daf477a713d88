package http

import (
	"net/http"
	"slices"
)

// withCORS handles cross-origin requests against the configured origin
// allowlist. A single "*" entry allows any origin. Preflight OPTIONS
// requests are answered with 204 without reaching the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	origins := h.cfg.HTTP.CORSOrigins
	allowAny := slices.Contains(origins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && (allowAny || slices.Contains(origins, origin)) {
			header := w.Header()
			if allowAny {
				header.Set("Access-Control-Allow-Origin", "*")
			} else {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Add("Vary", "Origin")
			}
			header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			header.Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
