package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

// Toast renders one notification for the #toasts container. It removes itself
// after a few seconds.
func Toast(p *i18n.Printer, m flash.Message) templ.Component {
	return component(toast(p, m))
}

func toast(p *i18n.Printer, m flash.Message) g.Node {
	icon, tone := "fa-circle-check text-green-600", "border-green-200"
	if m.Kind == flash.KindError {
		icon, tone = "fa-circle-exclamation text-red-600", "border-red-200"
	}
	return Div(
		Class("toast w-80 rounded-lg border bg-white p-4 shadow-lg flex gap-3 "+tone),
		Role("status"),
		dsInit("setTimeout(() => el.remove(), 5000)"),
		I(Class("fa-solid text-lg "+icon)),
		Div(
			P(Class("font-semibold text-gray-900"), g.Text(p.T(m.Title))),
			g.If(m.Body != "", P(Class("text-sm text-gray-600"), g.Text(p.T(m.Body)))),
		),
	)
}
