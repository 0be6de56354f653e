package models

// SEO contains metadata for search engines and social sharing
type SEO struct {
	Title       string
	Description string // 150-160 chars recommended
	Keywords    string // comma-separated
	Canonical   string
	OGImage     string
	OGType      string // website, article
	TwitterCard string // summary, summary_large_image
	NoIndex     bool
	Locale      string
	AltLocales  []string // alternatives for hreflang
}

// DefaultSEO returns SEO with sensible defaults for the landing page
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "es",
		AltLocales:  []string{"en"},
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithLocale sets the current locale and the alternatives
func (s *SEO) WithLocale(locale string, altLocales ...string) *SEO {
	s.Locale = locale
	s.AltLocales = altLocales
	return s
}

// LocalizedURL returns the canonical URL with a lang query for hreflang links
func (s *SEO) LocalizedURL(lang string) string {
	if s.Canonical == "" {
		return "/?lang=" + lang
	}
	return s.Canonical + "?lang=" + lang
}

// Robots returns the content of the robots meta tag
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
