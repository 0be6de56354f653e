package partials

import (
	"context"
	"facttech_landing_go/middleware"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/leads"
	ui "facttech_landing_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DialogTarget is the element every demo endpoint swaps
const DialogTarget = "#demo-dialog"

// DialogOptions are the request-scoped extras of the dialog
type DialogOptions struct {
	TurnstileSiteKey string
	// AlertKey is an i18n key shown above the form, e.g. a failed captcha
	AlertKey string
	// FullPage marks a render inside the whole page rather than an htmx swap.
	// The submit button is then enabled and the server guards completeness.
	FullPage bool
}

// DemoDialog renders the demo request dialog for the workflow's active view.
// The closed view is an empty slot so later swaps have a target.
func DemoDialog(ctx context.Context, view leads.View, opts DialogOptions) g.Node {
	var content g.Node
	switch view.State {
	case leads.StateFormOpen, leads.StateSubmitting:
		content = demoForm(ctx, view, opts)
	case leads.StateSuccessShown:
		content = demoResult(ctx, "check", "demo-result--success", "demo.success.title", i18n.T(ctx, "demo.success.message"), "demo.success.ack")
	case leads.StateErrorShown:
		message := view.ErrorMessage
		if message == "" {
			message = i18n.T(ctx, "demo.error.fallback")
		}
		content = demoResult(ctx, "alert", "demo-result--error", "demo.error.title", message, "demo.error.ack")
	}

	return Div(
		ID("demo-dialog"),
		Class("demo-dialog-slot"),
		g.Attr("data-state", view.State.String()),
		g.If(content != nil, Div(
			Class("demo-overlay"),
			Role("dialog"),
			Aria("modal", "true"),
			Aria("labelledby", "demo-title"),
			content,
		)),
	)
}

// OpenDemoButton is a call-to-action that opens the dialog. Without htmx the
// surrounding form posts and the server redirects back to the page.
func OpenDemoButton(ctx context.Context, class, labelKey string) g.Node {
	return actionButton(ctx, "/demo/open", Class(class), ui.T(ctx, labelKey))
}

// SubmitButton is swapped on every field update to reflect CanSubmit
func SubmitButton(ctx context.Context, canSubmit, submitting bool) g.Node {
	return Button(
		ID("demo-submit"),
		Type("submit"),
		Class("btn btn-primary demo-submit"),
		g.If(!canSubmit || submitting, Disabled()),
		g.If(submitting, Aria("busy", "true")),
		Span(Class("btn-label"), g.If(!submitting, ui.T(ctx, "demo.submit")), g.If(submitting, ui.T(ctx, "demo.submitting"))),
		Span(Class("btn-busy"), ui.T(ctx, "demo.submitting")),
	)
}

// demoForm is the open form. landing.js maps Escape to the close button.
func demoForm(ctx context.Context, view leads.View, opts DialogOptions) g.Node {
	submitting := view.State == leads.StateSubmitting

	return Div(
		Class("demo-panel"),
		Div(
			Class("demo-panel__header"),
			H2(ID("demo-title"), ui.T(ctx, "demo.title")),
			actionButton(ctx, "/demo/close", Class("demo-panel__close"), Aria("label", i18n.T(ctx, "demo.close")), ui.Icon("close", "icon")),
		),
		P(Class("demo-panel__intro"), ui.T(ctx, "demo.intro")),
		Div(ID("demo-alert"), g.If(opts.AlertKey != "", alert(i18n.T(ctx, opts.AlertKey)))),
		g.El("form",
			ID("demo-form"),
			Method("post"),
			Action("/demo/submit"),
			ui.HX("post", "/demo/submit"),
			ui.HX("target", DialogTarget),
			ui.HX("swap", "outerHTML"),
			ui.HX("disabled-elt", "find button[type='submit']"),
			csrfInput(ctx),
			g.Map(leads.Fields, func(f leads.Field) g.Node {
				return formField(ctx, f, view.Lead.Get(f), submitting)
			}),
			g.If(opts.TurnstileSiteKey != "", Div(Class("cf-turnstile"), Data("sitekey", opts.TurnstileSiteKey))),
			P(Class("demo-panel__note"), ui.T(ctx, "demo.required_note")),
			Div(
				Class("demo-panel__actions"),
				Button(
					Type("button"),
					Class("btn btn-ghost"),
					ui.HX("post", "/demo/close"),
					ui.HX("target", DialogTarget),
					ui.HX("swap", "outerHTML"),
					ui.T(ctx, "demo.cancel"),
				),
				SubmitButton(ctx, view.CanSubmit || opts.FullPage, submitting),
			),
		),
	)
}

// fieldAttrs maps each field to its input type and autocomplete token
var fieldAttrs = map[leads.Field][2]string{
	leads.FieldName:    {"text", "name"},
	leads.FieldCompany: {"text", "organization"},
	leads.FieldEmail:   {"email", "email"},
	leads.FieldPhone:   {"tel", "tel"},
}

func formField(ctx context.Context, f leads.Field, value string, disabled bool) g.Node {
	id := "demo-" + string(f)
	live := g.Group{
		ui.HX("post", "/demo/fields"),
		ui.HX("include", "closest form"),
		ui.HX("target", "#demo-submit"),
		ui.HX("swap", "outerHTML"),
	}

	var control g.Node
	if f == leads.FieldIndustry {
		control = Select(
			ID(id),
			Name(string(f)),
			Required(),
			g.If(disabled, Disabled()),
			live,
			ui.HX("trigger", "change"),
			Option(Value(""), g.If(value == "", Selected()), Disabled(), ui.T(ctx, "demo.select_industry")),
			g.Map(leads.Industries, func(industry string) g.Node {
				return Option(Value(industry), g.If(industry == value, Selected()), g.Text(industry))
			}),
		)
	} else {
		attrs := fieldAttrs[f]
		control = Input(
			ID(id),
			Name(string(f)),
			Type(attrs[0]),
			AutoComplete(attrs[1]),
			Value(value),
			Required(),
			g.If(f == leads.FieldName, AutoFocus()),
			g.If(disabled, Disabled()),
			live,
			ui.HX("trigger", "input changed delay:250ms"),
		)
	}

	return Div(
		Class("demo-field"),
		Label(For(id), ui.T(ctx, "demo.fields."+string(f)), Span(Class("demo-field__required"), g.Text(" *"))),
		control,
	)
}

func demoResult(ctx context.Context, icon, class, titleKey, message, ackKey string) g.Node {
	return Div(
		Class("demo-panel demo-result "+class),
		Role("alertdialog"),
		ui.Icon(icon, "demo-result__icon"),
		H2(ID("demo-title"), ui.T(ctx, titleKey)),
		P(Class("demo-result__message"), g.Text(message)),
		actionButton(ctx, "/demo/dismiss", Class("btn btn-primary"), AutoFocus(), ui.T(ctx, ackKey)),
	)
}

func alert(message string) g.Node {
	return Div(Class("demo-alert demo-alert--error"), Role("alert"), g.Text(message))
}

// actionButton posts to path with htmx, or as a plain form without it
func actionButton(ctx context.Context, path string, children ...g.Node) g.Node {
	return g.El("form",
		Class("inline-form"),
		Method("post"),
		Action(path),
		csrfInput(ctx),
		Button(
			Type("submit"),
			ui.HX("post", path),
			ui.HX("target", DialogTarget),
			ui.HX("swap", "outerHTML"),
			g.Group(children),
		),
	)
}

func csrfInput(ctx context.Context) g.Node {
	return Input(Type("hidden"), Name("_csrf"), Value(middleware.CSRFTokenFromContext(ctx)))
}
