package templates

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

const (
	tailwindCDN    = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	fontAwesomeCDN = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"
	datastarCDN    = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"
)

// Page describes the page view being rendered.
type Page struct {
	// Name is one of the viewtypes.Page* names.
	Name string
	// TitleKey is the catalog key of the document title.
	TitleKey string
	// Path is the request path, used for active links.
	Path string
	// ViewID identifies this page view to the telemetry endpoints.
	ViewID string
	// Year is printed in the footer.
	Year int
	// Toasts are flash messages shown on load.
	Toasts []flash.Message
}

func (pg Page) streamURL() string {
	return "/api/views/" + url.PathEscape(pg.ViewID) + "/stream?page=" + url.QueryEscape(pg.Name)
}

// initialSignals seeds the reveal map, navbar state and any page signals.
// Without a view stream every region starts revealed.
func (pg Page) initialSignals(extra map[string]any) map[string]any {
	reveal := map[string]bool{}
	if regions, ok := viewtypes.PageRegions(pg.Name); ok {
		for _, r := range regions {
			reveal[r.Key] = pg.ViewID == ""
		}
	}
	signals := map[string]any{
		"reveal":   reveal,
		"scrolled": false,
		"scrollY":  0,
		"menuOpen": false,
	}
	for k, v := range extra {
		signals[k] = v
	}
	return signals
}

func layout(p *i18n.Printer, pg Page, extraSignals map[string]any, content ...g.Node) g.Node {
	title := p.T("site.name")
	if pg.TitleKey != "" {
		title = p.T(pg.TitleKey) + " · " + title
	}

	return Doctype(
		HTML(
			Lang(p.Lang()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(p.T("site.description"))),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href(fontAwesomeCDN)),
				Link(Rel("stylesheet"), Href("/static/dist/main.css")),
				Script(Src(tailwindCDN)),
				Script(Type("module"), Src(datastarCDN)),
				Script(Src("/static/dist/main.js"), Defer()),
			),
			Body(
				Class("min-h-screen flex flex-col bg-white text-gray-900 antialiased"),
				g.If(pg.ViewID != "", g.Group{
					Data("view", pg.ViewID),
					dsInit("@get('" + pg.streamURL() + "')"),
				}),
				dsSignals(pg.initialSignals(extraSignals)),
				navbar(p, pg),
				Main(Class("flex-1"), g.Group(content)),
				footer(p, pg),
				Div(
					ID("toasts"),
					Class("fixed bottom-4 right-4 z-50 flex flex-col gap-3"),
					Aria("live", "polite"),
					g.Group(g.Map(pg.Toasts, func(m flash.Message) g.Node { return toast(p, m) })),
				),
			),
		),
	)
}

// reveal marks a block as a tracked region. It is visible without
// JavaScript; Datastar hides it until the region's signal flips.
func reveal(r viewtypes.Region, delayMs int, class string) g.Node {
	cond := "$reveal." + r.Key
	nodes := g.Group{
		ID(r.DOMID()),
		Data("reveal", r.Key),
		Class(viewtypes.RevealBase + " " + class),
		dsClass(cond, viewtypes.RevealShown, viewtypes.RevealHidden),
	}
	if r.Threshold > 0 {
		nodes = append(nodes, Data("reveal-threshold", formatRatio(r.Threshold)))
	}
	if delayMs > 0 {
		nodes = append(nodes, Style("transition-delay: "+itoa(delayMs)+"ms"))
	}
	return nodes
}
