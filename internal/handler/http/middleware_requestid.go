package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns every request a correlation identifier, honoring a
// client-supplied X-Request-ID header and minting a UUID otherwise. The
// identifier is echoed back in the response header, stored in the request
// context, and stamped onto a child logger so that every log line emitted
// while serving the request carries it.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
