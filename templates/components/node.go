package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a context-aware gomponents builder to templ.Component, so
// handlers render every view with component.Render(ctx, w).
func Templ(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// HX builds hx-* attributes: HX("post", "/demo/open") is hx-post="/demo/open"
func HX(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}
