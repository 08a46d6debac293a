package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PROPOSALS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("PROPOSALS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PROPOSALS_TEST_MISSING", "fallback"))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "STORE_DRIVER", "REDIS_DB", "JWT_TTL", "CORS_ORIGINS"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "redis", cfg.StoreDriver)
		assert.Equal(t, 0, cfg.RedisDB)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("JWT_TTL", "90m")
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
		cfg := Load()
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "sqlite", cfg.StoreDriver)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	})

	t.Run("bad numbers fall back", func(t *testing.T) {
		t.Setenv("REDIS_DB", "two")
		t.Setenv("JWT_TTL", "forever")
		cfg := Load()
		assert.Equal(t, 0, cfg.RedisDB)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	})
}
