package middleware

import (
	"context"
	"facttech_landing_go/config"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VisitorCookie holds the anonymous session id that keys the demo workflow
const VisitorCookie = "ft_visitor"

const visitorKey contextKey = "visitor_id"

// Visitor makes sure every request carries a visitor id, issuing a session
// cookie on first contact. Malformed cookie values are replaced.
func Visitor(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookie); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.New().String()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   cfg.IsProduction(),
				})
			}

			c.Set(string(visitorKey), id)
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), visitorKey, id)))

			return next(c)
		}
	}
}

// GetVisitorID returns the visitor id set by Visitor, or "" outside it
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(string(visitorKey)).(string); ok {
		return id
	}
	return ""
}
