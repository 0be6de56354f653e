package partials

import (
	"context"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/landing"
	ui "facttech_landing_go/templates/components"

	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Navbar renders the fixed top navigation. landing.js refreshes it through
// GET /htmx/nav with the scroll position and section offsets.
func Navbar(ctx context.Context, state landing.NavState) g.Node {
	lang := i18n.GetLocale(ctx)
	other := otherLanguage(lang)

	return Header(
		ID("navbar"),
		gc.Classes{"navbar": true, "navbar--scrolled": state.Scrolled},
		Nav(
			Class("container navbar__inner"),
			A(Class("navbar__brand"), Href("#home"), g.Text("FactTech")),
			Ul(
				Class("navbar__links"),
				g.Map(landing.NavItems, func(item landing.NavItem) g.Node {
					active := item.ID == state.Active
					return Li(
						A(
							Href("#"+item.ID),
							gc.Classes{"navbar__link": true, "navbar__link--active": active},
							g.If(active, Aria("current", "true")),
							ui.T(ctx, item.LabelKey),
						),
					)
				}),
			),
			Div(
				Class("navbar__actions"),
				A(Class("navbar__lang"), Href("/?lang="+other), g.Attr("hreflang", other), ui.T(ctx, "nav.language")),
				OpenDemoButton(ctx, "btn btn-primary", "nav.request_demo"),
			),
		),
	)
}
