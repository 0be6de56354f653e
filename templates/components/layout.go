package components

import (
	"context"
	"facttech_landing_go/middleware"
	"facttech_landing_go/models"
	"facttech_landing_go/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HTMXScript is the pinned htmx build loaded from unpkg
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// TurnstileScript loads the Cloudflare captcha widget in explicit render mode
const TurnstileScript = "https://challenges.cloudflare.com/turnstile/v0/api.js?render=explicit"

// PageConfig holds the document-level settings of a page
type PageConfig struct {
	SEO              *models.SEO
	TurnstileEnabled bool
}

// Layout renders the HTML document around body. htmx requests carry the CSRF
// token through hx-headers on <body>.
func Layout(ctx context.Context, cfg PageConfig, body ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	lang := i18n.GetLocale(ctx)

	return Doctype(
		HTML(
			Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				seoHead(cfg.SEO),
				Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL(ctx, "images/favicon.svg"))),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap")),
				Link(Rel("stylesheet"), Href(middleware.AssetURL(ctx, "css/landing.css"))),
				Script(Src(HTMXScript), g.Attr("nonce", nonce), Defer()),
				g.If(cfg.TurnstileEnabled, Script(Src(TurnstileScript), g.Attr("nonce", nonce), Defer())),
				Script(Src(middleware.AssetURL(ctx, "js/landing.js")), g.Attr("nonce", nonce), Defer()),
			),
			Body(
				Class("landing"),
				HX("headers", JSON(map[string]string{middleware.CSRFHeader: middleware.CSRFTokenFromContext(ctx)})),
				g.Group(body),
			),
		),
	)
}

func seoHead(seo *models.SEO) g.Node {
	if seo == nil {
		return nil
	}
	return g.Group{
		TitleEl(g.Text(seo.Title)),
		Meta(Name("description"), Content(seo.Description)),
		g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
		Meta(Name("robots"), Content(seo.Robots())),
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
		Link(Rel("alternate"), g.Attr("hreflang", seo.Locale), Href(seo.LocalizedURL(seo.Locale))),
		g.Map(seo.AltLocales, func(alt string) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", alt), Href(seo.LocalizedURL(alt)))
		}),
		Meta(g.Attr("property", "og:title"), Content(seo.Title)),
		Meta(g.Attr("property", "og:description"), Content(seo.Description)),
		Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
		Meta(g.Attr("property", "og:locale"), Content(seo.Locale)),
		g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
		g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
	}
}
