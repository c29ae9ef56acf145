package authclient_test

import (
	"testing"

	authclient "github.com/goliatone/go-auth-client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromClaims(t *testing.T) {
	claims, err := authclient.DecodeToken(adminToken)
	require.NoError(t, err)

	identity := authclient.IdentityFromClaims(claims)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, authclient.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())

	// ID and email are only populated when fetched separately.
	assert.Empty(t, identity.ID)
	assert.Empty(t, identity.Email)

	_, err = identity.UUID()
	assert.Error(t, err)
}
