package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID, server-assigned).
	ID string `json:"id"`

	// Email is the unique user email used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the argon2id-encoded hash of the user's password.
	// This value MUST be a derived value (KDF output), never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user record. Nil fields are
// left untouched by the repository.
type UserUpdate struct {
	// Email replaces the user's email when non-nil.
	Email *string

	// PasswordHash replaces the stored credential when non-nil.
	// Must already be an argon2id-encoded hash.
	PasswordHash *string
}

// IsEmpty reports whether the update carries no changes at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil
}
