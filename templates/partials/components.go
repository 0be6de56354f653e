package partials

import (
	"context"
	"facttech_landing_go/services/landing"
	"facttech_landing_go/services/leads"
	ui "facttech_landing_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// DemoDialogComponent is the htmx response of the dialog endpoints
func DemoDialogComponent(view leads.View, opts DialogOptions) templ.Component {
	return ui.Templ(func(ctx context.Context) g.Node {
		return DemoDialog(ctx, view, opts)
	})
}

// SubmitButtonComponent is the htmx response of /demo/fields
func SubmitButtonComponent(canSubmit, submitting bool) templ.Component {
	return ui.Templ(func(ctx context.Context) g.Node {
		return SubmitButton(ctx, canSubmit, submitting)
	})
}

// NavbarComponent is the htmx response of /htmx/nav
func NavbarComponent(state landing.NavState) templ.Component {
	return ui.Templ(func(ctx context.Context) g.Node {
		return Navbar(ctx, state)
	})
}
