package templates

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

type navLink struct {
	Href string
	Key  string
}

var navLinks = []navLink{
	{Href: "/", Key: "nav.home"},
	{Href: "/register", Key: "nav.register"},
	{Href: "/dashboard", Key: "nav.dashboard"},
}

// isActive matches the root exactly and other links by prefix.
func isActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func navbar(p *i18n.Printer, pg Page) g.Node {
	return Header(
		ID("navbar"),
		Class(viewtypes.NavbarBase+" "+viewtypes.NavbarClear),
		dsClass("$scrolled", viewtypes.NavbarSolid, viewtypes.NavbarClear),
		Div(
			Class("container mx-auto px-4 flex items-center justify-between"),
			A(
				Href("/"),
				Class("flex items-center gap-2 text-xl font-bold text-gray-900"),
				I(Class("fa-solid fa-clipboard-check text-blue-600")),
				Span(g.Text(p.T("site.name"))),
			),
			Nav(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					return navAnchor(p, l, pg.Path, "")
				})),
			),
			Div(
				Class("hidden md:flex items-center gap-4"),
				languageSwitch(p, pg.Path),
				A(Href("/register"), Class(viewtypes.PrimaryButton+" px-4 py-2"), g.Text(p.T("nav.cta"))),
			),
			Button(
				Type("button"),
				Class("md:hidden p-2 text-gray-700"),
				Aria("label", p.T("nav.toggle_menu")),
				dsAttr("aria-expanded", "$menuOpen"),
				dsOn("click", "$menuOpen = !$menuOpen"),
				I(Class("fa-solid fa-bars text-xl"), dsShow("!$menuOpen")),
				I(Class("fa-solid fa-xmark text-xl"), dsShow("$menuOpen"), Style("display: none")),
			),
		),
		Div(
			ID("mobile-menu"),
			Class("md:hidden bg-white border-t border-gray-100 shadow-md"),
			Style("display: none"),
			dsShow("$menuOpen"),
			Nav(
				Class("container mx-auto px-4 py-4 flex flex-col gap-4"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					return navAnchor(p, l, pg.Path, "$menuOpen = false")
				})),
				languageSwitch(p, pg.Path),
				A(Href("/register"), Class(viewtypes.PrimaryButton+" w-full"), g.Text(p.T("nav.cta"))),
			),
		),
	)
}

func navAnchor(p *i18n.Printer, l navLink, path, onClick string) g.Node {
	class := viewtypes.NavLinkIdle
	if isActive(l.Href, path) {
		class = viewtypes.NavLinkActive
	}
	return A(
		Href(l.Href),
		Class("transition-colors "+class),
		g.If(isActive(l.Href, path), Aria("current", "page")),
		g.If(onClick != "", dsOn("click", onClick)),
		g.Text(p.T(l.Key)),
	)
}

func languageSwitch(p *i18n.Printer, path string) g.Node {
	if path == "" {
		path = "/"
	}
	return A(
		Href(path+"?lang="+p.T("nav.language_code")),
		Class("text-sm text-gray-500 hover:text-blue-600"),
		Lang(p.T("nav.language_code")),
		I(Class("fa-solid fa-globe mr-1")),
		g.Text(p.T("nav.language")),
	)
}
