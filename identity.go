package authclient

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the closed application role set. Anything the backend sends that is
// not recognized normalizes to RoleUser.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// NormalizeRole maps a raw role claim onto the closed role set. Matching is
// case-insensitive; unknown or empty input falls back to RoleUser. The second
// return value reports whether the input was recognized, so callers can log
// the substitution; it is not an error.
func NormalizeRole(raw string) (Role, bool) {
	switch strings.ToUpper(raw) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleUser):
		return RoleUser, true
	default:
		return RoleUser, false
	}
}

// Identity is the application-facing user record derived from the latest
// successfully decoded credential. ID and Email stay empty unless the host
// application fetches them separately; they are never required for
// authorization decisions.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UUID parses the identity ID as a UUID, for backends that issue them.
func (i Identity) UUID() (uuid.UUID, error) {
	return uuid.Parse(i.ID)
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IdentityFromClaims derives an Identity from decoded claims. The mapping is
// deterministic: username comes from the subject, the role is normalized, and
// the remaining fields are left empty.
func IdentityFromClaims(claims *Claims) Identity {
	role, _ := NormalizeRole(claims.RawRole)
	return Identity{
		Username: claims.Subject,
		Role:     role,
	}
}
