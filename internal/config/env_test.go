package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpersDefaults(t *testing.T) {
	assert.Equal(t, "fallback", envStr("TEST_UNSET_STR", "fallback"))
	assert.True(t, envBool("TEST_UNSET_BOOL", true))
	assert.Equal(t, 7, envInt("TEST_UNSET_INT", 7))
	assert.Equal(t, time.Minute, envDur("TEST_UNSET_DUR", time.Minute))
}

func TestEnvHelpersFromEnvironment(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_BOOL", "false")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_DUR", "90s")
	t.Setenv("TEST_BAD_INT", "forty")
	t.Setenv("TEST_BAD_DUR", "soon")

	assert.Equal(t, "value", envStr("TEST_STR", "fallback"))
	assert.False(t, envBool("TEST_BOOL", true))
	assert.Equal(t, 42, envInt("TEST_INT", 7))
	assert.Equal(t, 90*time.Second, envDur("TEST_DUR", time.Minute))

	// Unparseable values fall back to the default.
	assert.Equal(t, 7, envInt("TEST_BAD_INT", 7))
	assert.Equal(t, time.Minute, envDur("TEST_BAD_DUR", time.Minute))
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "route_query", cfg.KeyStrategy)
	assert.Equal(t, 1<<20, cfg.MaxBodyBytes)
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	// TTL is raised so bucket state outlives several refill intervals.
	assert.Equal(t, 10*time.Second, cfg.TTL)
}
