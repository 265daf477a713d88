// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// handlerFunc is an HTTP handler that reports failures by returning an error
// instead of writing its own error response. The handle adapter funnels every
// returned error through writeError, so normalization happens in exactly one
// place.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts a handlerFunc into a standard http.HandlerFunc.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// writeData writes a success envelope with the given payload and status.
func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, data any, statusCode int) error {
	if _, err := utils.WriteJSON(w, models.OK(data), statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
		return nil // headers are already sent, nothing more to report
	}
	return nil
}

// writePage writes a success envelope with pagination metadata.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, data any, page, limit, total int) error {
	if _, err := utils.WriteJSON(w, models.Paginated(data, page, limit, total), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
	return nil
}

// writeError is the single point where failures become HTTP responses. It
// classifies the error, logs it once with its request correlation fields, and
// writes a failure envelope whose status line agrees with the embedded code.
//
// In production mode internal error messages are replaced with a generic
// message so that implementation details never reach clients; all other kinds
// carry client-safe messages by construction.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind, message := classifyError(err)
	status := kind.Status()
	requestID := utils.GetRequestIDFromContext(r.Context())

	log.Err(err).
		Str("code", kind.Code()).
		Int("status", status).
		Str("request_id", requestID).
		Msg(message)

	if kind == kindInternal && h.cfg.App.IsProduction() {
		message = app.MsgInternalServerError
	}

	if _, werr := utils.WriteJSON(w, models.Fail(message, kind.Code(), requestID), status); werr != nil {
		log.Err(werr).Msg("writing error response failed")
	}
}
