package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserRepository is the persistence boundary for user accounts. All methods
// propagate store-level failures untouched (wrapped at most) so that the
// transport layer can classify them.
type UserRepository interface {
	// FindPage returns one page of users ordered by creation time, together
	// with the total number of records.
	FindPage(ctx context.Context, page, limit int) ([]models.User, int, error)

	// FindByID returns the user with the given ID or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// FindByEmail returns the user with the given email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Create persists a new user and returns it with server-assigned fields
	// populated. A duplicate email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update applies a partial update and returns the updated record.
	// Returns ErrUserNotFound if no record matches id and
	// ErrEmailAlreadyExists on an email collision.
	Update(ctx context.Context, id string, update models.UserUpdate) (models.User, error)

	// Delete removes the user with the given ID. Returns ErrUserNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
