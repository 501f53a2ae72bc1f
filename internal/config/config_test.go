package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:                  "development",
			Port:                 "8000",
			JWTSecret:            "secure-secret-at-least-32-chars-long",
			DBPassword:           "secure-password",
			DBSSLMode:            "disable",
			IndexCacheTTLSeconds: 20,
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("negative cache ttl", func(t *testing.T) {
		c := base()
		c.IndexCacheTTLSeconds = -1
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})
}

func TestConfig_IndexCacheTTL(t *testing.T) {
	c := &Config{IndexCacheTTLSeconds: 20}
	assert.Equal(t, "20s", c.IndexCacheTTL().String())
}
