package middleware

import (
	"facttech_landing_go/services/i18n"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Stop()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "errors.rate_limited", rl.config.MessageKey)
}

func TestRateLimiterAllowAndSweep(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	defer rl.Stop()

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "keys are independent")
	assert.Equal(t, 2, rl.Len())

	rl.sweep(time.Now())
	assert.Equal(t, 2, rl.Len(), "live windows survive a sweep")

	rl.sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, rl.Len())
	assert.True(t, rl.Allow("a"), "expired window resets")

	rl.Stop()
	rl.Stop()
}

func TestRateLimiterMiddleware(t *testing.T) {
	require.NoError(t, i18n.Load())
	e := echo.New()

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 2,
			Window:   time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		req := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.NoError(t, handler(c))

		req = httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
		c = e.NewContext(req, httptest.NewRecorder())
		err := handler(c)

		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("HXRequestExceeded", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		req := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.NoError(t, handler(c))

		req = httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		c = e.NewContext(req, rec)

		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "#demo-alert", rec.Header().Get("HX-Retarget"))
		assert.Contains(t, rec.Body.String(), i18n.Translate("es", "errors.rate_limited"))
	})
}

func TestFieldUpdatesHaveTheirOwnBudget(t *testing.T) {
	assert.NotSame(t, PublicFormRateLimiter, FieldUpdateRateLimiter)
	assert.Equal(t, time.Minute, FieldUpdateRateLimiter.config.Window)

	// Three tabs typing without a pause for a minute, one update per 250ms delay
	typingBurst := 3 * int(time.Minute/(250*time.Millisecond))
	assert.Greater(t, FieldUpdateRateLimiter.config.Requests, typingBurst)
	assert.Greater(t, FieldUpdateRateLimiter.config.Requests, PublicFormRateLimiter.config.Requests)

	rl := NewRateLimiter(FieldUpdateRateLimiter.config)
	defer rl.Stop()
	for i := 0; i < typingBurst; i++ {
		require.True(t, rl.Allow("10.0.0.1"), "update %d", i)
	}
}
