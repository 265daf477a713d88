package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
)

// userService is the concrete implementation of UserService.
// It validates input, enforces email uniqueness, hashes passwords with
// argon2id before storage, and strips credential material from every user
// record it returns.
type userService struct {
	// userRepository is the data-access layer used to persist and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// List returns one page of users plus the total record count. Credential
// material is stripped from every returned record.
func (u *userService) List(ctx context.Context, query models.ListUsersQuery) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	if err := validators.Struct(query); err != nil {
		log.Error().Err(err).Int("page", query.Page).Int("limit", query.Limit).Msg("invalid pagination window")
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	users, total, err := u.userRepository.FindPage(ctx, query.Page, query.Limit)
	if err != nil {
		log.Err(err).Msg("user page lookup failed")
		return nil, 0, fmt.Errorf("user page lookup failed: %w", err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, total, nil
}

// GetByID returns a single user with credential material stripped.
func (u *userService) GetByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user lookup by id failed")
		return models.User{}, fmt.Errorf("user lookup by id failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Create registers a new account.
//
// The email-uniqueness check is check-then-act: a concurrent signup with the
// same email can pass the lookup and fail on the database unique constraint
// instead, which the repository also maps to store.ErrEmailAlreadyExists, so
// callers observe a conflict either way.
func (u *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.Struct(req); err != nil {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	_, err := u.userRepository.FindByEmail(ctx, req.Email)
	if err == nil {
		log.Error().Str("email", req.Email).Msg("email already taken")
		return models.User{}, store.ErrEmailAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", req.Email).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := u.userRepository.Create(ctx, models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.PasswordHash = ""
	return created, nil
}

// Update applies a partial update to an existing account. An email change is
// re-checked for uniqueness (same check-then-act caveat as Create); a new
// password is hashed before it reaches the repository. A request that changes
// nothing returns the current record without touching the database.
func (u *userService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.Struct(req); err != nil {
		log.Error().Str("id", id).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	existing, err := u.userRepository.FindByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user lookup by id failed")
		return models.User{}, fmt.Errorf("user lookup by id failed: %w", err)
	}

	var update models.UserUpdate

	if req.Email != nil && *req.Email != existing.Email {
		if _, err := u.userRepository.FindByEmail(ctx, *req.Email); err == nil {
			log.Error().Str("email", *req.Email).Msg("email already taken")
			return models.User{}, store.ErrEmailAlreadyExists
		} else if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("email", *req.Email).Msg("user lookup by email failed")
			return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
		}
		update.Email = req.Email
	}

	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	if update.IsEmpty() {
		existing.PasswordHash = ""
		return existing, nil
	}

	updated, err := u.userRepository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	updated.PasswordHash = ""
	return updated, nil
}

// Delete removes an account.
func (u *userService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
