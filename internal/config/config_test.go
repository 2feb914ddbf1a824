package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AppEnv:         EnvDevelopment,
		ServerPort:     "3000",
		RequestTimeout: 30 * time.Second,
		DatabaseURL:    "postgres://localhost:5432/autobid",
		DBMaxConns:     10,
		DBMinConns:     2,
		JWTSecret:      "secret",
		SessionTTL:     72 * time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("requires JWT_SECRET", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = "  "
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires DATABASE_URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects an unknown environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.AppEnv = "staging"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects inconsistent pool bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBMinConns = 20
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects a non-positive session TTL", func(t *testing.T) {
		cfg := validConfig()
		cfg.SessionTTL = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads with required env set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/autobid")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, EnvDevelopment, cfg.AppEnv)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
		assert.NotEmpty(t, cfg.CORSOrigins)
	})

	t.Run("malformed durations fall back to defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/autobid")
		t.Setenv("SESSION_TTL", "three days")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	})

	t.Run("fails without a JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/autobid")

		_, err := Load()
		assert.Error(t, err)
	})
}
