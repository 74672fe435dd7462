package config_test

import (
	"testing"
	"time"

	"nupo-consult/internal/shared/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("CACHE_TTL_MINUTES", "")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.Redis.CacheTTL)
		assert.Equal(t, "info@nupoconsult.com", cfg.Mail.NotifyTo)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Contains(t, cfg.Database.PostgresDSN(), "dbname=")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("sqlite url", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URL", "sqlite:///./nupo.db")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.True(t, cfg.Database.IsSQLite())
		assert.Equal(t, "./nupo.db", cfg.Database.SQLitePath())
	})
}
