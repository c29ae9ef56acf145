package authclient

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate applies the same constraints the login form enforces before the
// request ever leaves the client.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
	)
}

// LoginResponse is the success body for POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the payload for POST /auth/register, an admin-only
// action.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Validate checks the registration payload.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, validation.Required, validation.In(RoleAdmin, RoleUser)),
	)
}

// loginErrorBody is the error envelope the backend attaches to non-2xx login
// responses. Both fields are optional.
type loginErrorBody struct {
	Message           string `json:"message"`
	RemainingAttempts *int   `json:"remainingAttempts"`
}
