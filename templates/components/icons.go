package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// iconPaths are 24x24 outline paths keyed by the names used in landing content
var iconPaths = map[string]string{
	"receipt":     "M9 14l6-6m-5.5.5h.01m4.99 5h.01M19 21V5a2 2 0 00-2-2H7a2 2 0 00-2 2v16l3.5-2 3.5 2 3.5-2 3.5 2z",
	"inventory":   "M20 7l-8-4-8 4m16 0l-8 4m8-4v10l-8 4m0-10L4 7m8 4v10M4 7v10l8 4",
	"receivables": "M17 9V7a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2m2 4h10a2 2 0 002-2v-6a2 2 0 00-2-2H9a2 2 0 00-2 2v6a2 2 0 002 2zm7-5a2 2 0 11-4 0 2 2 0 014 0z",
	"reports":     "M9 19v-6a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2a2 2 0 002-2zm0 0V9a2 2 0 012-2h2a2 2 0 012 2v10m-6 0a2 2 0 002 2h2a2 2 0 002-2m0 0V5a2 2 0 012-2h2a2 2 0 012 2v14a2 2 0 01-2 2h-2a2 2 0 01-2-2z",
	"store":       "M3 9l1-5h16l1 5M3 9h18M3 9v11h18V9M9 20v-6h6v6",
	"truck":       "M9 17a2 2 0 11-4 0 2 2 0 014 0zm10 0a2 2 0 11-4 0 2 2 0 014 0zM13 16V6a1 1 0 00-1-1H4a1 1 0 00-1 1v10h2m8 0h2m-2 0V8h4l3 4v4h-3",
	"hardhat":     "M2 18h20M4 18v-3a8 8 0 0116 0v3M10 7V4h4v3",
	"wrench":      "M14.7 6.3a4 4 0 00-5.4 5.4L3 18l3 3 6.3-6.3a4 4 0 005.4-5.4l-2.5 2.5-2.8-.7-.7-2.8 2.5-2.5z",
	"utensils":    "M7 3v8m-3-8v5a3 3 0 006 0V3M7 11v10m10-18c-2 0-3 2-3 6v4h3v8",
	"health":      "M4.3 6.3a4.5 4.5 0 000 6.4L12 20.4l7.7-7.7a4.5 4.5 0 00-6.4-6.4L12 7.6l-1.3-1.3a4.5 4.5 0 00-6.4 0z",
	"factory":     "M3 21V10l6 4V10l6 4V6l6 4v11H3z",
	"bank":        "M3 10l9-6 9 6M5 10v8m4-8v8m6-8v8m4-8v8M3 21h18",
	"globe":       "M21 12a9 9 0 11-18 0 9 9 0 0118 0zM3.6 9h16.8M3.6 15h16.8M12 3a15 15 0 010 18M12 3a15 15 0 000 18",
	"language":    "M3 5h12M9 3v2m1.05 9.5A18 18 0 016.4 9m6.1 9h7M11 21l5-10 5 10",
	"currency":    "M12 8c-1.7 0-3 .9-3 2s1.3 2 3 2 3 .9 3 2-1.3 2-3 2m0-8c1.1 0 2.1.4 2.6 1M12 8V7m0 1v8m0 0v1m0-1c-1.1 0-2.1-.4-2.6-1M21 12a9 9 0 11-18 0 9 9 0 0118 0z",
	"pin":         "M17.7 16.7L13.4 21a2 2 0 01-2.8 0l-4.3-4.3a8 8 0 1111.4 0zM15 11a3 3 0 11-6 0 3 3 0 016 0z",
	"check":       "M5 13l4 4L19 7",
	"alert":       "M12 8v4m0 4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z",
	"close":       "M6 18L18 6M6 6l12 12",
}

// Icon renders a named outline icon; unknown names render nothing
func Icon(name, class string) g.Node {
	d, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		Class(class),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke-width", "2"),
		Aria("hidden", "true"),
		g.El("path", g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round"), g.Attr("d", d)),
	)
}
