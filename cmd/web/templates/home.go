package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/utils/markdown"
)

// HomePage is the landing page: hero, feature grid and call to action.
func HomePage(p *i18n.Printer, pg Page, features []catalog.Feature) templ.Component {
	return component(layout(p, pg, nil,
		hero(p),
		featureSection(p, features),
		ctaSection(p),
	))
}

func homeRegion(key string) viewtypes.Region {
	return viewtypes.Lookup(viewtypes.PageHome, key)
}

func hero(p *i18n.Printer) g.Node {
	return Section(
		ID("hero"),
		Class("hero-gradient pt-36 pb-24 md:pt-44 md:pb-32"),
		Div(
			Class("container mx-auto px-4 text-center max-w-4xl"),
			Div(
				reveal(homeRegion("heroTitle"), 0, ""),
				Span(Class(viewtypes.SectionBadge), g.Text(p.T("hero.badge"))),
				H1(
					Class("text-4xl md:text-6xl font-bold tracking-tight text-gray-900"),
					g.Text(p.T("hero.title.before")+" "),
					Span(Class("text-gradient"), g.Text(p.T("hero.title.highlight"))),
					g.Text(" "+p.T("hero.title.after")),
				),
			),
			P(
				reveal(homeRegion("heroDescription"), 200, "mt-6 text-lg md:text-xl text-gray-600"),
				g.Text(p.T("hero.description")),
			),
			Div(
				reveal(homeRegion("heroButtons"), 400, "mt-10 flex flex-col sm:flex-row items-center justify-center gap-4"),
				A(Href("/register"), Class(viewtypes.PrimaryButton),
					g.Text(p.T("hero.start")),
					I(Class("fa-solid fa-arrow-right")),
				),
				A(Href("/dashboard"), Class(viewtypes.OutlineButton), g.Text(p.T("hero.dashboard"))),
			),
		),
	)
}

func featureSection(p *i18n.Printer, features []catalog.Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, featureCard(p, viewtypes.FeatureRegion(i+1), f))
	}

	return Section(
		ID("features"),
		Class("py-24 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				reveal(homeRegion("features"), 0, "text-center max-w-3xl mx-auto mb-16"),
				Span(Class(viewtypes.SectionBadge), g.Text(p.T("features.badge"))),
				H2(Class("text-3xl md:text-4xl font-bold text-gray-900"), g.Text(p.T("features.title"))),
				P(Class("mt-4 text-lg text-gray-600"), g.Text(p.T("features.description"))),
			),
			Div(
				Class("grid gap-8 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(cards),
			),
		),
	)
}

func featureCard(p *i18n.Printer, r viewtypes.Region, f catalog.Feature) g.Node {
	return Div(
		reveal(r, f.Delay, viewtypes.Card+" p-6 hover:shadow-md"),
		Div(
			Class("w-12 h-12 rounded-lg bg-blue-100 text-blue-600 flex items-center justify-center mb-4"),
			I(Class("fa-solid fa-"+f.Icon+" text-xl")),
		),
		H3(Class("text-xl font-semibold text-gray-900 mb-2"), g.Text(p.T("feature."+f.Key+".title"))),
		P(Class("text-gray-600"), g.Raw(string(markdown.Inline(p.T("feature."+f.Key+".description"))))),
	)
}

func ctaSection(p *i18n.Printer) g.Node {
	return Section(
		ID("cta"),
		Class("py-24"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				reveal(homeRegion("cta"), 0, "rounded-2xl bg-gradient-to-r from-blue-600 to-purple-600 px-8 py-16 text-center text-white shadow-xl"),
				H2(Class("text-3xl md:text-4xl font-bold"), g.Text(p.T("cta.title"))),
				P(Class("mt-4 text-lg text-blue-100 max-w-2xl mx-auto"), g.Text(p.T("cta.description"))),
				Div(
					Class("mt-8 flex flex-col sm:flex-row items-center justify-center gap-4"),
					A(Href("/register"), Class("inline-flex items-center gap-2 px-6 py-3 rounded-lg bg-white text-blue-700 font-medium hover:bg-blue-50"),
						g.Text(p.T("cta.start")),
					),
					A(Href("/dashboard"), Class("inline-flex items-center gap-2 px-6 py-3 rounded-lg border border-white/60 text-white font-medium hover:bg-white/10"),
						g.Text(p.T("cta.demo")),
					),
				),
			),
		),
	)
}
