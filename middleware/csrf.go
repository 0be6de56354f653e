package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

// CSRFTokenKey holds the token in the request context for components
const CSRFTokenKey contextKey = "csrf_token"

// CSRFHeader is the header htmx sends the token in (hx-headers on <body>)
const CSRFHeader = "X-CSRF-Token"

// GetCSRFToken retrieves the CSRF token set by echo's CSRF middleware
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFToContext copies the echo CSRF token into the request context.
// Register it after middleware.CSRFWithConfig.
func CSRFToContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), CSRFTokenKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// CSRFTokenFromContext returns the token stored by CSRFToContext
func CSRFTokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(CSRFTokenKey).(string); ok {
		return val
	}
	return ""
}
