package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.CORSOrigins)
	assert.Equal(t, "/uploads", cfg.UploadPublicPath)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Empty(t, cfg.SMTPHost)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("UPLOAD_PUBLIC_PATH", "files/")
	t.Setenv("CORS_ORIGINS", " https://jobs.example.com/ , ,http://localhost:3000")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "/files", cfg.UploadPublicPath)
	assert.Equal(t, []string{"https://jobs.example.com", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestValidate(t *testing.T) {
	base := Config{JWTSecret: "s", StoreDriver: "memory", UploadDriver: "local"}

	t.Run("ok", func(t *testing.T) {
		c := base
		assert.NoError(t, c.Validate())
	})

	t.Run("missing secret", func(t *testing.T) {
		c := base
		c.JWTSecret = ""
		assert.ErrorContains(t, c.Validate(), "JWT_SECRET")
	})

	t.Run("postgres needs url", func(t *testing.T) {
		c := base
		c.StoreDriver = "postgres"
		assert.ErrorContains(t, c.Validate(), "DATABASE_URL")
	})

	t.Run("s3 needs bucket", func(t *testing.T) {
		c := base
		c.UploadDriver = "s3"
		assert.ErrorContains(t, c.Validate(), "S3_BUCKET")
	})

	t.Run("unknown store", func(t *testing.T) {
		c := base
		c.StoreDriver = "mongo"
		assert.Error(t, c.Validate())
	})
}
