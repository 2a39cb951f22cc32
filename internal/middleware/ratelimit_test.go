package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiderrentals/rental-api/internal/config"
)

func newRateContext(t *testing.T, method, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "203.0.113.7:51234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/bookings")
	return c
}

func TestBuildRateKeyStrategies(t *testing.T) {
	c := newRateContext(t, http.MethodPost, "/v1/bookings")

	ipRoute := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, c)
	assert.Equal(t, "rl:ip:203.0.113.7:route:POST /v1/bookings", ipRoute)

	ipOnly := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c)
	assert.Equal(t, "rl:ip:203.0.113.7", ipOnly)

	// Anonymous requests fall back to "anon" for user strategies.
	userKey := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}, c)
	assert.Equal(t, "rl:user:anon", userKey)

	c.Set("user_id", uint64(42))
	userKey = buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}, c)
	assert.Equal(t, "rl:user:42", userKey)
}

func TestDisabledLimiterIsPassthrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
