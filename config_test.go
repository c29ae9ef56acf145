package authclient_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	authclient "github.com/goliatone/go-auth-client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := authclient.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.GetBaseURL())
	assert.Equal(t, "/login", cfg.GetLoginRoute())
	assert.Equal(t, "/products", cfg.GetLandingRoute())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	assert.Equal(t, 60*time.Second, cfg.GetTokenCheckInterval())
	assert.Equal(t, "authclient.db", cfg.GetStoragePath())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authclient.yaml")
	content := []byte(`base_url: https://api.example.com
login_route: /signin
landing_route: /home
token_check_interval: 30s
storage_path: /tmp/session.db
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := authclient.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.GetBaseURL())
	assert.Equal(t, "/signin", cfg.GetLoginRoute())
	assert.Equal(t, "/home", cfg.GetLandingRoute())
	assert.Equal(t, 30*time.Second, cfg.GetTokenCheckInterval())
	assert.Equal(t, "/tmp/session.db", cfg.GetStoragePath())

	// Unset keys keep their defaults.
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := authclient.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
