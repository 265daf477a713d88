package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserService holds the business rules of account management: input
// validation, email uniqueness, password hashing, and credential stripping.
// It is independent of the transport layer.
type UserService interface {
	// List returns one page of users plus the total record count. The query
	// must already be normalized (defaults applied).
	List(ctx context.Context, query models.ListUsersQuery) ([]models.User, int, error)

	// GetByID returns a single user or store.ErrUserNotFound.
	GetByID(ctx context.Context, id string) (models.User, error)

	// Create registers a new account. A taken email yields
	// store.ErrEmailAlreadyExists; invalid input yields
	// ErrInvalidDataProvided.
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// Update applies a partial update to an existing account.
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)

	// Delete removes an account or returns store.ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}

// AuthService issues and verifies bearer tokens and authenticates
// credentials. It does not perform authorization decisions; those belong to
// the handlers.
type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
