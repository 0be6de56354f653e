package handlers

import (
	"facttech_landing_go/services/landing"
	"facttech_landing_go/templates/partials"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// isHTMX reports whether the request was issued by htmx
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// render writes an HTML component with the request context
func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// NavHTMX returns the navbar for the scroll position reported by the browser.
// Query: y=<scrollY>&s=<section>:<top>, s repeated per section.
func NavHTMX(c echo.Context) error {
	scrollY, err := strconv.ParseFloat(c.QueryParam("y"), 64)
	if err != nil || scrollY < 0 {
		scrollY = 0
	}
	sections := landing.ParseSectionOffsets(c.QueryParams()["s"])
	return render(c, partials.NavbarComponent(landing.ComputeNavState(scrollY, sections)))
}
