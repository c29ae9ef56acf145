package authclient

import (
	"time"

	"github.com/goliatone/go-errors"
	"github.com/spf13/viper"
)

// FileConfig is the concrete Config loaded from a YAML file with environment
// overrides. Hosts with their own configuration systems can implement Config
// directly instead.
type FileConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	LoginRoute         string        `mapstructure:"login_route"`
	LandingRoute       string        `mapstructure:"landing_route"`
	AuthScheme         string        `mapstructure:"auth_scheme"`
	TokenCheckInterval time.Duration `mapstructure:"token_check_interval"`
	StoragePath        string        `mapstructure:"storage_path"`
}

var _ Config = (*FileConfig)(nil)

// GetBaseURL returns the backend base URL, e.g. "http://localhost:8080".
func (c *FileConfig) GetBaseURL() string {
	return c.BaseURL
}

// GetLoginRoute returns the route guards and logout navigate to.
func (c *FileConfig) GetLoginRoute() string {
	return c.LoginRoute
}

// GetLandingRoute returns the safe default route for authenticated users.
func (c *FileConfig) GetLandingRoute() string {
	return c.LandingRoute
}

// GetAuthScheme returns the Authorization header scheme.
func (c *FileConfig) GetAuthScheme() string {
	return c.AuthScheme
}

// GetTokenCheckInterval returns the expiry poll cadence.
func (c *FileConfig) GetTokenCheckInterval() time.Duration {
	return c.TokenCheckInterval
}

// GetStoragePath returns the SQLite session store location.
func (c *FileConfig) GetStoragePath() string {
	return c.StoragePath
}

// LoadConfig reads the client configuration from path. Environment variables
// prefixed with AUTHCLIENT_ override file values (AUTHCLIENT_BASE_URL, ...).
// An empty path loads defaults plus environment only.
func LoadConfig(path string) (*FileConfig, error) {
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("login_route", "/login")
	v.SetDefault("landing_route", "/products")
	v.SetDefault("auth_scheme", "Bearer")
	v.SetDefault("token_check_interval", defaultCheckInterval)
	v.SetDefault("storage_path", "authclient.db")

	v.SetEnvPrefix("AUTHCLIENT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to read config file")
		}
	}

	cfg := &FileConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to parse config")
	}

	return cfg, nil
}
