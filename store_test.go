package authclient_test

import (
	"context"
	"path/filepath"
	"testing"

	authclient "github.com/goliatone/go-auth-client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := authclient.NewMemoryStore()

	snapshot, err := store.Read(ctx)
	require.NoError(t, err)
	assert.False(t, snapshot.Present())

	identity := authclient.Identity{Username: "alice", Email: "alice@example.com", Role: authclient.RoleAdmin}
	require.NoError(t, store.Write(ctx, adminToken, identity))

	snapshot, err = store.Read(ctx)
	require.NoError(t, err)
	require.True(t, snapshot.Present())
	assert.Equal(t, adminToken, snapshot.Credential)
	assert.Equal(t, identity, *snapshot.Identity)

	require.NoError(t, store.Clear(ctx))

	snapshot, err = store.Read(ctx)
	require.NoError(t, err)
	assert.False(t, snapshot.Present())
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := authclient.OpenSQLStore(ctx, filepath.Join(t.TempDir(), "authclient.db"))
	require.NoError(t, err)
	defer store.Close()

	snapshot, err := store.Read(ctx)
	require.NoError(t, err)
	assert.False(t, snapshot.Present())

	identity := authclient.Identity{Username: "alice", Role: authclient.RoleUser}
	require.NoError(t, store.Write(ctx, adminToken, identity))

	snapshot, err = store.Read(ctx)
	require.NoError(t, err)
	require.True(t, snapshot.Present())
	assert.Equal(t, adminToken, snapshot.Credential)
	assert.Equal(t, identity, *snapshot.Identity)
}

func TestSQLStoreWriteOverwrites(t *testing.T) {
	ctx := context.Background()

	store, err := authclient.OpenSQLStore(ctx, filepath.Join(t.TempDir(), "authclient.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write(ctx, "first.token.sig", authclient.Identity{Username: "alice", Role: authclient.RoleUser}))
	require.NoError(t, store.Write(ctx, "second.token.sig", authclient.Identity{Username: "bob", Role: authclient.RoleAdmin}))

	snapshot, err := store.Read(ctx)
	require.NoError(t, err)
	require.True(t, snapshot.Present())
	assert.Equal(t, "second.token.sig", snapshot.Credential)
	assert.Equal(t, "bob", snapshot.Identity.Username)
	assert.Equal(t, authclient.RoleAdmin, snapshot.Identity.Role)
}

func TestSQLStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()

	store, err := authclient.OpenSQLStore(ctx, filepath.Join(t.TempDir(), "authclient.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Clear(ctx))

	require.NoError(t, store.Write(ctx, adminToken, authclient.Identity{Username: "alice", Role: authclient.RoleUser}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	snapshot, err := store.Read(ctx)
	require.NoError(t, err)
	assert.False(t, snapshot.Present())
}

func TestSQLStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "authclient.db")

	store, err := authclient.OpenSQLStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, adminToken, authclient.Identity{Username: "alice", Role: authclient.RoleAdmin}))
	require.NoError(t, store.Close())

	reopened, err := authclient.OpenSQLStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	snapshot, err := reopened.Read(ctx)
	require.NoError(t, err)
	require.True(t, snapshot.Present())
	assert.Equal(t, "alice", snapshot.Identity.Username)
}
