package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("REELOPS_API_URL", "")
	t.Setenv("REELOPS_STATE_DIR", "/tmp/reelops-test")
	t.Setenv("REELOPS_REQUEST_TIMEOUT", "")
	t.Setenv("REELOPS_REDIS_URL", "")
	t.Setenv("REELOPS_OTEL", "")
	t.Setenv("REELOPS_VERBOSE", "")

	cfg := FromEnv()

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/reelops-test", cfg.StateDir)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.OTel)
	assert.False(t, cfg.Verbose)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REELOPS_API_URL", "https://catalog.internal")
	t.Setenv("REELOPS_STATE_DIR", "/var/lib/reelops")
	t.Setenv("REELOPS_REQUEST_TIMEOUT", "5s")
	t.Setenv("REELOPS_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REELOPS_OTEL", "true")
	t.Setenv("REELOPS_VERBOSE", "true")

	cfg := FromEnv()

	assert.Equal(t, "https://catalog.internal", cfg.APIBaseURL)
	assert.Equal(t, "/var/lib/reelops", cfg.StateDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.OTel)
	assert.True(t, cfg.Verbose)
}

func TestFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("REELOPS_STATE_DIR", "/tmp/reelops-test")
	t.Setenv("REELOPS_REQUEST_TIMEOUT", "not-a-duration")

	cfg := FromEnv()
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
}

func TestMockFromEnv(t *testing.T) {
	t.Setenv("REELOPS_MOCK_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("REELOPS_MOCK_JWT_SECRET", "test-secret")
	t.Setenv("REELOPS_MOCK_TOKEN_TTL", "45m")
	t.Setenv("REELOPS_VERBOSE", "true")

	cfg := MockFromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 45*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.Verbose)
}
