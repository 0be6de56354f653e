package partials

import (
	"context"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/landing"
	ui "facttech_landing_go/templates/components"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactEmail is printed in the footer
const ContactEmail = "info@facttech.app"

func Hero(ctx context.Context) g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		Div(
			Class("container hero__inner"),
			H1(Class("hero__title"), ui.T(ctx, "hero.title")),
			P(Class("hero__subtitle"), ui.T(ctx, "hero.subtitle")),
			Div(Class("hero__actions"), OpenDemoButton(ctx, "btn btn-primary btn-lg", "hero.cta")),
		),
	)
}

// cardGrid renders a titled section of icon cards
func cardGrid(ctx context.Context, id, prefix string, cards []landing.Card) g.Node {
	return Section(
		ID(id),
		Class("section section--"+id),
		Div(
			Class("container"),
			H2(Class("section__title"), ui.T(ctx, prefix+".title")),
			P(Class("section__subtitle"), ui.T(ctx, prefix+".subtitle")),
			Div(
				Class("card-grid"),
				g.Map(cards, func(card landing.Card) g.Node {
					return Article(
						Class("card"),
						Div(Class("card__icon"), ui.Icon(card.Icon, "icon")),
						H3(Class("card__title"), ui.T(ctx, card.TitleKey)),
						P(Class("card__desc"), ui.T(ctx, card.DescKey)),
					)
				}),
			),
		),
	)
}

func Features(ctx context.Context) g.Node {
	return cardGrid(ctx, "features", "modules", landing.CoreModules)
}

func Industries(ctx context.Context) g.Node {
	return cardGrid(ctx, "industries", "industries", landing.IndustrySolutions)
}

func Stats(ctx context.Context) g.Node {
	lang := i18n.GetLocale(ctx)
	return Section(
		ID("stats"),
		Class("stats"),
		Div(
			Class("container stats__grid"),
			g.Map(landing.Stats, func(stat landing.Stat) g.Node {
				return Div(
					Class("stat"),
					// landing.js counts up to data-value when the band scrolls into view
					Span(Class("stat__value"), Data("value", strconv.Itoa(stat.Value)), Data("suffix", stat.Suffix), g.Text(formatStatValue(stat.Value, lang)+stat.Suffix)),
					Span(Class("stat__label"), ui.T(ctx, stat.LabelKey)),
				)
			}),
		),
	)
}

func CallToAction(ctx context.Context) g.Node {
	return Section(
		ID("contact"),
		Class("cta"),
		Div(
			Class("container cta__inner"),
			H2(Class("cta__title"), ui.T(ctx, "cta.title")),
			P(Class("cta__subtitle"), ui.T(ctx, "cta.subtitle")),
			OpenDemoButton(ctx, "btn btn-light btn-lg", "cta.button"),
		),
	)
}

func GlobalReach(ctx context.Context) g.Node {
	return cardGrid(ctx, "global", "global", landing.GlobalFeatures)
}

func PageFooter(ctx context.Context, year int) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer__grid"),
			Div(
				Class("footer__about"),
				Span(Class("footer__brand"), g.Text("FactTech")),
				P(ui.T(ctx, "footer.about")),
			),
			Div(
				H4(ui.T(ctx, "footer.navigation")),
				Ul(g.Map(landing.NavItems, func(item landing.NavItem) g.Node {
					return Li(A(Href("#"+item.ID), ui.T(ctx, item.LabelKey)))
				})),
			),
			Div(
				H4(ui.T(ctx, "footer.contact")),
				A(Href("mailto:"+ContactEmail), g.Text(ContactEmail)),
			),
		),
		Div(
			Class("container footer__bottom"),
			P(ui.T(ctx, "footer.rights", map[string]interface{}{"year": year})),
			P(ui.T(ctx, "footer.made_with")),
		),
	)
}
