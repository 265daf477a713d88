package models

// CreateUserRequest is the JSON body of POST /v1/users and
// POST /v1/auth/register.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest is the JSON body of PATCH /v1/users/:id.
// Omitted fields leave the corresponding attribute unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// LoginRequest is the JSON body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ListUsersQuery holds the normalized pagination window of GET /v1/users.
type ListUsersQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=100"`
}

// AuthResponse is returned by register and login: the account together with
// a freshly issued bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// DeleteResponse confirms a successful DELETE /v1/users/:id.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	OK bool  `json:"ok"`
	TS int64 `json:"ts"`
}
