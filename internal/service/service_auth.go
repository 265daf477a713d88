package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using the UserService for account creation, the UserRepository
// for lookups, and argon2id for password verification.
type authService struct {
	// userService performs account creation on registration.
	userService UserService

	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserService
// and UserRepository, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userService UserService, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userService:    userService,
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account and issues a token for it.
//
// Returns the persisted user and token, or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped token error if JWT generation fails.
func (a *authService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, models.Token, error) {
	user, err := a.userService.Create(ctx, req)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an existing user and issues a token.
//
// It validates the payload, looks up the account by email, and verifies the
// password against the stored argon2id hash.
//
// Returns the authenticated user and token, or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - store.ErrUserNotFound if no account matches the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validators.Struct(req); err != nil {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := utils.VerifyPassword(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("password verification failed")
		return models.User{}, models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Error().Str("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	foundUser.PasswordHash = ""
	return foundUser, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token is reported as ErrTokenIsExpired; every
// other validation failure (wrong issuer, bad signature, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
