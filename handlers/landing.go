package handlers

import (
	"facttech_landing_go/config"
	"facttech_landing_go/middleware"
	"facttech_landing_go/services/landing"
	"facttech_landing_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// Landing renders the page with the visitor's current dialog view, which is
// also how the dialog works without JavaScript
func (h *DemoHandler) Landing(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	lang := middleware.GetLocale(c)

	vm := pages.LandingViewModel{
		SEO:           landingSEO(cfg, lang),
		Nav:           landing.ComputeNavState(0, nil),
		DialogOptions: dialogOptions(cfg),
		Year:          h.now().Year(),
	}
	vm.DialogOptions.FullPage = true
	if wf, ok := h.registry.Lookup(middleware.GetVisitorID(c)); ok {
		vm.Dialog = wf.View()
	}
	return render(c, pages.Landing(vm))
}
