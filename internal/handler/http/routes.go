package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the full middleware pipeline. The order is
// load-bearing: recovery wraps everything, security headers and the body
// limit run before any body is read, compression wraps request identification
// so that error envelopes are compressed too, and rate limiting is the last
// gate before the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRecover)
	router.Use(h.withSecurity)
	router.Use(h.withCORS)
	router.Use(h.withGZip)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit)

	router.Get("/", h.handle(h.index))
	router.Get("/healthz", h.handle(h.healthz))

	if h.cfg.HTTP.EnableDocs {
		router.Get("/docs", h.handle(h.docs))
	}

	router.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.handle(h.listUsers))
			r.Post("/", h.handle(h.createUser))
			r.Get("/{id}", h.handle(h.getUser))
			r.Patch("/{id}", h.handle(h.updateUser))
			r.Delete("/{id}", h.handle(h.deleteUser))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handle(h.register))
			r.Post("/login", h.handle(h.login))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.handle(h.me))
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, newAPIError(kindNotFound, app.MsgRouteNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, newAPIError(kindNotFound, app.MsgRouteNotFound))
	})

	return router
}
