package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/config"
	"badgeserver/internal/middleware"
)

func newLimitedServer(cfg *config.RateLimitConfig) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	e.Use(middleware.RateLimit(cfg, logger))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/api/v1/health", ok)
	e.GET("/*", ok)
	return e
}

func get(e *echo.Echo, path, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func strictConfig(secret string) *config.RateLimitConfig {
	return &config.RateLimitConfig{
		Enabled:       true,
		RPS:           0.1,
		Burst:         1,
		ExpireMinutes: 1,
		BypassSecret:  secret,
	}
}

func TestRateLimit_AllowsBurst(t *testing.T) {
	e := newLimitedServer(&config.RateLimitConfig{Enabled: true, RPS: 10, Burst: 5, ExpireMinutes: 1})

	for i := 0; i < 5; i++ {
		rec := get(e, "/badge/a-b-green.svg", "10.0.0.1", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}
}

func TestRateLimit_DeniesOverBurst(t *testing.T) {
	e := newLimitedServer(strictConfig(""))

	require.Equal(t, http.StatusOK, get(e, "/travis/a/b.svg", "10.0.0.2", "").Code)
	rec := get(e, "/travis/a/b.svg", "10.0.0.2", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.Equal(t, 1, resp.RetryAfter)
}

func TestRateLimit_PerClientIP(t *testing.T) {
	e := newLimitedServer(strictConfig(""))

	assert.Equal(t, http.StatusOK, get(e, "/gem/v/rails.svg", "10.0.0.3", "").Code)
	assert.Equal(t, http.StatusOK, get(e, "/gem/v/rails.svg", "10.0.0.4", "").Code)
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		provided string
		wantCode int
	}{
		{name: "correct secret bypasses", secret: "s3cret", provided: "s3cret", wantCode: http.StatusOK},
		{name: "wrong secret is limited", secret: "s3cret", provided: "nope", wantCode: http.StatusTooManyRequests},
		{name: "empty secret disables bypass", secret: "", provided: "anything", wantCode: http.StatusTooManyRequests},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedServer(strictConfig(tt.secret))
			ip := "10.0.1." + string(rune('1'+i))

			get(e, "/npm/v/left-pad.svg", ip, tt.provided)
			rec := get(e, "/npm/v/left-pad.svg", ip, tt.provided)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRateLimit_HealthIsNeverLimited(t *testing.T) {
	e := newLimitedServer(strictConfig(""))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(e, "/api/v1/health", "10.0.0.5", "").Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := strictConfig("")
	cfg.Enabled = false
	e := newLimitedServer(cfg)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(e, "/badge/a-b-red.svg", "10.0.0.6", "").Code)
	}
}
