package handlers

import (
	"context"
	"errors"
	"facttech_landing_go/config"
	"facttech_landing_go/db"
	"facttech_landing_go/middleware"
	"facttech_landing_go/services"
	"facttech_landing_go/services/leads"
	"facttech_landing_go/templates/partials"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// contactAnchor is where non-htmx posts land so the dialog is in view
const contactAnchor = "/#contact"

// turnstileField is the form field the Turnstile widget fills in
const turnstileField = "cf-turnstile-response"

// DemoHandler serves the landing page and the demo request dialog. Each
// visitor's workflow is looked up by the session id set by middleware.Visitor.
type DemoHandler struct {
	registry *leads.Registry
	metrics  *services.LeadMetrics

	verifyCaptcha func(ctx context.Context, token, secretKey, ip string) (bool, error)
	sendEmail     func(cfg *config.Config, email *services.Email)
	now           func() time.Time
}

// NewDemoHandler wires the handlers to a workflow registry. metrics may be nil.
func NewDemoHandler(registry *leads.Registry, metrics *services.LeadMetrics) *DemoHandler {
	return &DemoHandler{
		registry:      registry,
		metrics:       metrics,
		verifyCaptcha: services.VerifyTurnstileToken,
		sendEmail:     services.SendEmailAsync,
		now:           time.Now,
	}
}

func (h *DemoHandler) workflow(c echo.Context) (*leads.Workflow, error) {
	id := middleware.GetVisitorID(c)
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Missing visitor session")
	}
	return h.registry.Get(id), nil
}

func dialogOptions(cfg *config.Config) partials.DialogOptions {
	opts := partials.DialogOptions{}
	if cfg.TurnstileEnabled() {
		opts.TurnstileSiteKey = cfg.TurnstileSiteKey
	}
	return opts
}

// respond swaps the dialog for htmx or sends the browser back to the page
func (h *DemoHandler) respond(c echo.Context, wf *leads.Workflow, opts partials.DialogOptions) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, contactAnchor)
	}
	return render(c, partials.DemoDialogComponent(wf.View(), opts))
}

// formFields reads the posted demo inputs. Absent inputs are left out so a
// partial post never blanks a field.
func formFields(c echo.Context) map[leads.Field]string {
	values := make(map[leads.Field]string)
	params, err := c.FormParams()
	if err != nil {
		return values
	}
	for _, f := range leads.Fields {
		if v, ok := params[string(f)]; ok && len(v) > 0 {
			values[f] = v[0]
		}
	}
	return values
}

// Open shows an empty demo form
func (h *DemoHandler) Open(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	wf, err := h.workflow(c)
	if err != nil {
		return err
	}
	wf.Open()
	return h.respond(c, wf, dialogOptions(cfg))
}

// Close abandons the form, aborting a submission in flight
func (h *DemoHandler) Close(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	wf, err := h.workflow(c)
	if err != nil {
		return err
	}
	wf.Close()
	return h.respond(c, wf, dialogOptions(cfg))
}

// Dismiss acknowledges the success or error dialog
func (h *DemoHandler) Dismiss(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	wf, err := h.workflow(c)
	if err != nil {
		return err
	}
	wf.Dismiss()
	return h.respond(c, wf, dialogOptions(cfg))
}

// Fields stores the typed values and returns the submit control
func (h *DemoHandler) Fields(c echo.Context) error {
	wf, err := h.workflow(c)
	if err != nil {
		return err
	}
	if err := wf.SetFields(formFields(c)); err != nil {
		c.Logger().Debugf("Ignoring field update: %v", err)
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, contactAnchor)
	}
	view := wf.View()
	return render(c, partials.SubmitButtonComponent(view.CanSubmit, view.State == leads.StateSubmitting))
}

// Submit stores the posted values, verifies the captcha when configured and
// sends the lead. The response is the dialog for the resulting view.
func (h *DemoHandler) Submit(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	wf, err := h.workflow(c)
	if err != nil {
		return err
	}
	opts := dialogOptions(cfg)

	if err := wf.SetFields(formFields(c)); err != nil {
		// Not on the form (already closed or a submission pending): show the active view
		return h.respond(c, wf, opts)
	}

	if cfg.TurnstileEnabled() && !h.captchaPassed(c, cfg) {
		opts.AlertKey = "demo.captcha_required"
		return h.respond(c, wf, opts)
	}

	outcome, err := wf.Submit(c.Request().Context())
	var fieldErr *leads.FieldError
	switch {
	case errors.Is(err, leads.ErrIncomplete):
		opts.AlertKey = "demo.required_note"
		return h.respond(c, wf, opts)
	case errors.As(err, &fieldErr):
		opts.AlertKey = "demo.invalid"
		return h.respond(c, wf, opts)
	case err != nil:
		return h.respond(c, wf, opts)
	}

	h.resolve(c, cfg, outcome)
	return h.respond(c, wf, opts)
}

func (h *DemoHandler) captchaPassed(c echo.Context, cfg *config.Config) bool {
	token := c.FormValue(turnstileField)
	if token == "" {
		return false
	}
	ok, err := h.verifyCaptcha(c.Request().Context(), token, cfg.TurnstileSecretKey, c.RealIP())
	if err != nil {
		c.Logger().Warnf("Turnstile verification failed: %v", err)
		return false
	}
	return ok
}

// resolve logs, measures and records a finished attempt and confirms
// accepted leads by email
func (h *DemoHandler) resolve(c echo.Context, cfg *config.Config, outcome leads.Outcome) {
	h.metrics.ObserveOutcome(outcome)
	lang := middleware.GetLocale(c)

	if db.DB != nil {
		meta := services.SubmissionMeta{
			SessionID: middleware.GetVisitorID(c),
			IPAddress: c.RealIP(),
			UserAgent: c.Request().UserAgent(),
			Locale:    lang,
		}
		// Aborted requests are recorded too
		ctx := context.WithoutCancel(c.Request().Context())
		if _, err := services.RecordSubmission(ctx, db.DB, outcome, meta); err != nil {
			c.Logger().Errorf("Failed to record demo submission: %v", err)
		}
	}

	if outcome.Kind != leads.OutcomeSuccess {
		c.Logger().Warnf("Demo request ended as %s after %s: %v", outcome.Kind, outcome.Duration, outcome.Err)
		return
	}

	c.Logger().Infof("Demo request accepted: %s (%s) in %s", outcome.Lead.Company, outcome.Lead.Industry, outcome.Duration)
	h.sendEmail(cfg, services.BuildDemoConfirmationEmail(outcome.Lead, cfg.AppURL, lang))
}
