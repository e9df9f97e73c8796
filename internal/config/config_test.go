package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:         "8465",
		JWTSecret:    "test-secret",
		PageSize:     10,
		FeedCacheTTL: 20 * time.Second,
		Env:          "test",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateMissingPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidatePageSize(t *testing.T) {
	cfg := validConfig()
	cfg.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg.PageSize = -3
	assert.Error(t, cfg.Validate())

	cfg.PageSize = 1
	assert.NoError(t, cfg.Validate())
}

func TestValidateFeedCacheTTL(t *testing.T) {
	cfg := validConfig()
	cfg.FeedCacheTTL = -time.Second
	assert.Error(t, cfg.Validate())

	// Zero disables expiry-based reuse; still a legal configuration.
	cfg.FeedCacheTTL = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "change-me-in-production"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 20*time.Second, cfg.FeedCacheTTL)
	assert.NotEmpty(t, cfg.Port)
}
