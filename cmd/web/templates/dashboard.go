package templates

import (
	"net/url"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/utils/format"
)

// Dashboard tabs.
const (
	TabParticipants = "participants"
	TabEvents       = "events"
	TabStats        = "stats"
)

var dashboardTabs = []string{TabParticipants, TabEvents, TabStats}

// DashboardView is the data behind the dashboard page.
type DashboardView struct {
	Stats        []catalog.Stat
	Query        string
	Participants []participants.Participant
}

// DashboardPage renders the dashboard with the participants tab selected.
func DashboardPage(p *i18n.Printer, pg Page, v DashboardView) templ.Component {
	regionOf := func(key string) viewtypes.Region { return viewtypes.Lookup(viewtypes.PageDashboard, key) }

	return component(layout(p, pg, map[string]any{"tab": TabParticipants, "search": v.Query},
		Section(
			Class("bg-gray-50 pt-28 pb-16 min-h-screen"),
			Div(
				Class("container mx-auto px-4"),
				Div(
					reveal(regionOf("dashboardTitle"), 0, "flex flex-col md:flex-row md:items-end md:justify-between gap-4 mb-8"),
					Div(
						H1(Class("text-3xl font-bold text-gray-900"), g.Text(p.T("dashboard.title"))),
						P(Class("mt-2 text-gray-600"), g.Text(p.T("dashboard.description"))),
					),
					Div(
						Class("flex gap-3"),
						A(
							ID("export-link"),
							Href(exportURL(v.Query)),
							dsAttr("href", "'/dashboard/export.csv?q=' + encodeURIComponent($search)"),
							Class(viewtypes.OutlineButton+" px-4 py-2"),
							I(Class("fa-solid fa-download")),
							g.Text(p.T("dashboard.action.export")),
						),
						A(Href("/register"), Class(viewtypes.PrimaryButton+" px-4 py-2"),
							I(Class("fa-solid fa-plus")),
							g.Text(p.T("dashboard.action.add")),
						),
					),
				),
				Div(
					reveal(regionOf("dashboard"), 200, "space-y-8"),
					statCards(p, v.Stats),
					tabList(p),
					Div(
						ID("panel-"+TabParticipants),
						Role("tabpanel"),
						dsShow("$tab == '"+TabParticipants+"'"),
						participantsCard(p, v),
					),
					soonPanel(p, TabEvents, "events.title", "events.description", "events.soon"),
					soonPanel(p, TabStats, "statistics.title", "statistics.description", "statistics.soon"),
				),
			),
		),
	))
}

func exportURL(q string) string {
	if q == "" {
		return "/dashboard/export.csv"
	}
	return "/dashboard/export.csv?q=" + url.QueryEscape(q)
}

func statCards(p *i18n.Printer, stats []catalog.Stat) g.Node {
	return Div(
		ID("stats"),
		Class("grid gap-6 md:grid-cols-3"),
		g.Group(g.Map(stats, func(s catalog.Stat) g.Node {
			return Div(
				Class(viewtypes.Card+" p-6 flex items-center gap-4"),
				Div(
					Class("w-12 h-12 rounded-full flex items-center justify-center "+viewtypes.ToneClass(s.Tone)),
					I(Class("fa-solid fa-"+s.Icon+" text-xl")),
				),
				Div(
					P(Class("text-sm text-gray-500"), g.Text(p.T("stats."+s.Key))),
					P(Class("text-2xl font-bold text-gray-900"), Data("stat", s.Key), g.Text(statValue(p.Lang(), s))),
				),
			)
		})),
	)
}

func statValue(lang string, s catalog.Stat) string {
	if s.Kind == catalog.StatPercent {
		return format.Percent(lang, s.Value)
	}
	return format.Integer(lang, int(s.Value))
}

func tabList(p *i18n.Printer) g.Node {
	return Div(
		Role("tablist"),
		Class("inline-flex rounded-lg bg-gray-200 p-1"),
		g.Group(g.Map(dashboardTabs, func(tab string) g.Node {
			cond := "$tab == '" + tab + "'"
			return Button(
				Type("button"),
				ID("tab-"+tab),
				Role("tab"),
				Class("px-4 py-2 rounded-md text-sm font-medium transition-colors"),
				dsClass(cond, "bg-white text-gray-900 shadow-sm", "text-gray-600 hover:text-gray-900"),
				dsAttr("aria-selected", cond),
				dsOn("click", "$tab = '"+tab+"'"),
				g.Text(p.T("dashboard.tab."+tab)),
			)
		})),
	)
}

func soonPanel(p *i18n.Printer, tab, titleKey, descKey, soonKey string) g.Node {
	return Div(
		ID("panel-"+tab),
		Role("tabpanel"),
		Style("display: none"),
		dsShow("$tab == '"+tab+"'"),
		Div(
			Class(viewtypes.Card+" p-6"),
			H2(Class("text-xl font-semibold text-gray-900"), g.Text(p.T(titleKey))),
			P(Class("text-gray-600 mt-1"), g.Text(p.T(descKey))),
			Div(
				Class("mt-6 rounded-lg border-2 border-dashed border-gray-200 py-12 text-center"),
				I(Class("fa-solid fa-person-digging text-3xl text-gray-400")),
				P(Class("mt-3 font-medium text-gray-700"), g.Text(p.T("soon.title"))),
				P(Class("mt-1 text-sm text-gray-500"), g.Text(p.T(soonKey))),
			),
		),
	)
}
