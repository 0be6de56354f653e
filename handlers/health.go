package handlers

import (
	"facttech_landing_go/db"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the submission log database answers
func HealthHandler(c echo.Context) error {
	if err := db.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorf("Health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
