package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/MKhiriev/go-user-api/internal/logger"
)

// withRecover converts downstream panics into a normalized 500 envelope. It
// is the outermost middleware so that a panic anywhere in the pipeline still
// produces a well-formed response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromRequest(r).Error().Any("panic", rec).Msg("panic recovered")
				h.writeError(w, r, wrapAPIError(kindInternal, app.MsgInternalServerError, fmt.Errorf("panic: %v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
