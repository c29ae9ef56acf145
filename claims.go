package authclient

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded middle segment of a credential. Only the four fields
// the backend contract requires are inspected; the signature is never
// verified (the server owns token integrity, we only read it).
type Claims struct {
	jwt.RegisteredClaims
	RawRole string `json:"role,omitempty"`
}

// segmentDecoder tolerates both raw and padded base64url segments.
var segmentDecoder = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeToken decodes a compact three-segment credential into Claims without
// verifying the signature. It is all-or-nothing: any structural problem
// (wrong segment count, a middle segment that is not base64url, payload that
// is not JSON, or a missing sub/exp/iss claim) yields ErrMalformedCredential
// and no partial claims. The header and signature segments are treated as
// opaque.
func DecodeToken(raw string) (*Claims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedCredential
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return nil, ErrMalformedCredential
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, ErrMalformedCredential
	}

	if claims.Subject == "" || claims.Issuer == "" || claims.ExpiresAt == nil {
		return nil, ErrMalformedCredential
	}

	return claims, nil
}

// Role returns the normalized role claim.
func (c *Claims) Role() Role {
	role, _ := NormalizeRole(c.RawRole)
	return role
}

// IsExpired reports whether the claims expired at the given instant. The
// boundary is strict: exp equal to now already counts as expired.
func (c *Claims) IsExpired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !c.ExpiresAt.Time.After(now)
}
