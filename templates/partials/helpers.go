package partials

import (
	"facttech_landing_go/services/i18n"
	"strconv"
	"strings"
)

// formatStatValue groups thousands the way the locale writes them:
// 5000 is "5.000" in Spanish and "5,000" in English
func formatStatValue(value int, lang string) string {
	digits := strconv.Itoa(value)
	if len(digits) <= 3 {
		return digits
	}

	sep := "."
	if lang != i18n.DefaultLanguage {
		sep = ","
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// otherLanguage returns the language the switcher links to
func otherLanguage(lang string) string {
	for _, l := range i18n.Supported {
		if l != lang {
			return l
		}
	}
	return i18n.DefaultLanguage
}
