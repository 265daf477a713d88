package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		return err
	}

	return h.writeData(w, r, models.AuthResponse{
		User:  user,
		Token: token.SignedString,
	}, http.StatusCreated)
}

// login authenticates credentials and issues a token. A missing account and
// a wrong password both surface as the same 401 so that the response does not
// reveal whether the email is registered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			return wrapAPIError(kindUnauthorized, app.MsgInvalidEmailPassword, err)
		}
		return err
	}

	return h.writeData(w, r, models.AuthResponse{
		User:  user,
		Token: token.SignedString,
	}, http.StatusOK)
}

// me returns the account of the authenticated caller. The auth middleware
// has already validated the token and placed the user ID in the context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return ErrEmptyToken
	}

	user, err := h.services.UserService.GetByID(r.Context(), userID)
	if err != nil {
		return err
	}

	return h.writeData(w, r, user, http.StatusOK)
}
