package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Pagination bounds applied to GET /v1/users. Out-of-range values are
// clamped, not rejected.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// decodeJSON decodes the request body into dst, translating decoding
// failures into the parse kind and an exceeded body limit into 413.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return wrapAPIError(kindPayloadTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", maxBytesErr.Limit), err)
		}
		return wrapAPIError(kindParse, app.MsgInvalidJSONBody, err)
	}
	return nil
}

// parseListQuery normalizes the page/limit query parameters. Absent
// parameters take defaults, non-numeric values are rejected, out-of-range
// values are clamped into [1, maxLimit].
func parseListQuery(r *http.Request) (models.ListUsersQuery, error) {
	query := models.ListUsersQuery{Page: defaultPage, Limit: defaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, wrapAPIError(kindValidation, "page must be a positive integer", err)
		}
		query.Page = page
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, wrapAPIError(kindValidation, "limit must be a positive integer", err)
		}
		query.Limit = limit
	}

	if query.Page < 1 {
		query.Page = defaultPage
	}
	if query.Limit < 1 {
		query.Limit = defaultLimit
	}
	if query.Limit > maxLimit {
		query.Limit = maxLimit
	}

	return query, nil
}

// parseUserID validates the id route parameter. The column behind it is a
// uuid primary key, so anything that does not parse as a UUID is rejected
// here instead of surfacing as a driver error.
func parseUserID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", wrapAPIError(kindValidation, "id must be a valid UUID", err)
	}
	return id, nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	query, err := parseListQuery(r)
	if err != nil {
		return err
	}

	users, total, err := h.services.UserService.List(r.Context(), query)
	if err != nil {
		return err
	}

	return h.writePage(w, r, users, query.Page, query.Limit, total)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, err := parseUserID(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	return h.writeData(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		return err
	}

	return h.writeData(w, r, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := parseUserID(r)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		return err
	}

	return h.writeData(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := parseUserID(r)
	if err != nil {
		return err
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		return err
	}

	return h.writeData(w, r, models.DeleteResponse{Deleted: true}, http.StatusOK)
}
