package authclient

import (
	"github.com/goliatone/go-errors"
)

const (
	textCodeMalformedCredential = "MALFORMED_CREDENTIAL"
	textCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	textCodeDecodeFailed        = "CREDENTIAL_DECODE_FAILED"
	textCodeUnauthenticated     = "UNAUTHENTICATED"
	textCodeAccessDenied        = "ACCESS_DENIED"
	textCodeSessionRejected     = "SESSION_REJECTED"
)

// ErrMalformedCredential is returned by DecodeToken for any credential that
// does not decode to a complete claims set. It is recovered locally (treated
// as "not authenticated") and never shown to the user.
var ErrMalformedCredential = errors.New("malformed credential", errors.CategoryBadInput).
	WithTextCode(textCodeMalformedCredential).
	WithCode(errors.CodeBadRequest)

// ErrInvalidCredentials is the generic login failure when the server gives us
// nothing better to show.
var ErrInvalidCredentials = errors.New("invalid username or password", errors.CategoryAuth).
	WithTextCode(textCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrCredentialDecodeFailed is returned when login succeeded at the transport
// level but the returned token cannot be decoded. Nothing is persisted in
// that case.
var ErrCredentialDecodeFailed = errors.New("login returned an unreadable credential", errors.CategoryAuth).
	WithTextCode(textCodeDecodeFailed).
	WithCode(errors.CodeUnauthorized)

// ErrUnauthenticated is the guard outcome for a missing or expired session.
var ErrUnauthenticated = errors.New("authentication required", errors.CategoryAuth).
	WithTextCode(textCodeUnauthenticated).
	WithCode(errors.CodeUnauthorized)

// ErrAccessDenied is the guard outcome for an authenticated non-admin hitting
// an admin-only route.
var ErrAccessDenied = errors.New("access denied", errors.CategoryAuth).
	WithTextCode(textCodeAccessDenied).
	WithCode(errors.CodeForbidden)

// ErrSessionRejected records a backend 401/403 observed by the transport.
// The original response is still propagated to the caller; this error only
// shows up in logs.
var ErrSessionRejected = errors.New("session rejected by backend", errors.CategoryAuth).
	WithTextCode(textCodeSessionRejected).
	WithCode(errors.CodeUnauthorized)

// IsMalformedCredentialError checks for decode failures.
func IsMalformedCredentialError(err error) bool {
	return hasTextCode(err, textCodeMalformedCredential) || hasTextCode(err, textCodeDecodeFailed)
}

// IsAuthError reports whether err is a user-facing login failure.
func IsAuthError(err error) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.Category == errors.CategoryAuth
}

func hasTextCode(err error, code string) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}
