package components

import (
	"context"
	"facttech_landing_go/services/i18n"

	g "maragu.dev/gomponents"
)

// T renders a translated text node
func T(ctx context.Context, key string, args ...map[string]interface{}) g.Node {
	return g.Text(i18n.T(ctx, key, args...))
}
