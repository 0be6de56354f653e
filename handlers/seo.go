package handlers

import (
	"facttech_landing_go/config"
	"facttech_landing_go/models"
	"facttech_landing_go/services/i18n"
)

const ogImagePath = "/static/images/og-image.png"

// landingSEO builds the landing page metadata in lang
func landingSEO(cfg *config.Config, lang string) *models.SEO {
	var alternates []string
	for _, l := range i18n.Supported {
		if l != lang {
			alternates = append(alternates, l)
		}
	}

	return models.DefaultSEO(i18n.Translate(lang, "meta.title"), i18n.Translate(lang, "meta.description")).
		WithCanonical(cfg.AppURL + "/").
		WithKeywords(i18n.Translate(lang, "meta.keywords")).
		WithOGImage(cfg.AppURL + ogImagePath).
		WithLocale(lang, alternates...)
}
