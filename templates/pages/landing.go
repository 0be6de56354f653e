package pages

import (
	"context"
	"facttech_landing_go/models"
	"facttech_landing_go/services/landing"
	"facttech_landing_go/services/leads"
	ui "facttech_landing_go/templates/components"
	"facttech_landing_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingViewModel is everything the landing page needs from the handler
type LandingViewModel struct {
	SEO    *models.SEO
	Nav    landing.NavState
	Dialog leads.View
	// DialogOptions carries the Turnstile site key; an empty key hides the widget
	DialogOptions partials.DialogOptions
	Year          int
}

// Landing renders the single marketing page with the visitor's dialog view
func Landing(vm LandingViewModel) templ.Component {
	return ui.Templ(func(ctx context.Context) g.Node {
		return ui.Layout(ctx,
			ui.PageConfig{SEO: vm.SEO, TurnstileEnabled: vm.DialogOptions.TurnstileSiteKey != ""},
			partials.Navbar(ctx, vm.Nav),
			Main(
				partials.Hero(ctx),
				partials.Features(ctx),
				partials.Industries(ctx),
				partials.Stats(ctx),
				partials.CallToAction(ctx),
				partials.GlobalReach(ctx),
			),
			partials.PageFooter(ctx, vm.Year),
			partials.DemoDialog(ctx, vm.Dialog, vm.DialogOptions),
		)
	})
}
