package templates

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

func footer(p *i18n.Printer, pg Page) g.Node {
	return Footer(
		Class("border-t border-gray-200 bg-gray-50 py-8"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row items-center justify-between gap-4 text-sm text-gray-500"),
			Div(
				Class("flex items-center gap-2"),
				I(Class("fa-solid fa-clipboard-check text-blue-600")),
				Span(Class("font-semibold text-gray-700"), g.Text(p.T("site.name"))),
				Span(g.Text("·")),
				Span(g.Text(p.T("footer.tagline"))),
			),
			P(ID("footer-rights"), g.Text(p.T("footer.rights", itoa(pg.Year)))),
		),
	)
}
