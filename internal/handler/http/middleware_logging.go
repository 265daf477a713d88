package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-api/internal/logger"
)

const responseTimeHeader = "X-Response-Time"

// withLogging emits a debug line when a request starts and an info line when
// it completes, and stamps the elapsed handler time onto the response in the
// X-Response-Time header. The header is written just before the status line
// is sent, the last moment headers can still change.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		remote := r.RemoteAddr

		log.Debug().
			Str("uri", uri).
			Str("method", method).
			Str("remote", remote).
			Msg("request started")

		lw := &responseWriter{ResponseWriter: w}
		lw.beforeWriteHeader = func() {
			elapsed := time.Since(start)
			lw.Header().Set(responseTimeHeader, strconv.FormatInt(elapsed.Milliseconds(), 10)+"ms")
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
