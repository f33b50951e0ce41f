package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

// ParticipantsTBodyID is the table body replaced by search patches.
const ParticipantsTBodyID = "participants-tbody"

var participantColumns = []string{"name", "email", "event", "status", "date", "actions"}

func participantsCard(p *i18n.Printer, v DashboardView) g.Node {
	return Div(
		Class(viewtypes.Card),
		Div(
			Class("p-6 flex flex-col md:flex-row md:items-center md:justify-between gap-4 border-b border-gray-200"),
			Div(
				H2(Class("text-xl font-semibold text-gray-900"), g.Text(p.T("participants.title"))),
				P(Class("text-gray-600 mt-1"), g.Text(p.T("participants.description"))),
			),
			g.El("form",
				ID("participants-search"),
				Method("get"),
				Action("/dashboard"),
				Role("search"),
				Class("relative w-full md:w-72"),
				dsOn("submit__prevent", "@get('/api/participants')"),
				Label(For("participants-search-input"), Class("sr-only"), g.Text(p.T("participants.search_label"))),
				I(Class("fa-solid fa-magnifying-glass absolute left-3 top-1/2 -translate-y-1/2 text-gray-400")),
				Input(
					ID("participants-search-input"),
					Type("search"),
					Name("q"),
					Value(v.Query),
					Placeholder(p.T("participants.search_placeholder")),
					AutoComplete("off"),
					Class(viewtypes.FieldInput+" pl-9"),
					dsBind("search"),
					dsOn("input", "@get('/api/participants')"),
				),
			),
		),
		Div(
			Class("overflow-x-auto"),
			Table(
				Class("min-w-full divide-y divide-gray-200"),
				THead(
					Class("bg-gray-50"),
					Tr(g.Group(g.Map(participantColumns, func(col string) g.Node {
						return Th(
							g.Attr("scope", "col"),
							Class("px-6 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500"),
							g.Text(p.T("participants.col."+col)),
						)
					}))),
				),
				participantRows(p, v.Participants),
			),
		),
	)
}

// ParticipantRows renders the table body for list, or the no-results row
// when list is empty.
func ParticipantRows(p *i18n.Printer, list []participants.Participant) templ.Component {
	return component(participantRows(p, list))
}

func participantRows(p *i18n.Printer, list []participants.Participant) g.Node {
	if len(list) == 0 {
		return TBody(
			ID(ParticipantsTBodyID),
			Tr(
				ID("participants-empty"),
				Td(
					g.Attr("colspan", itoa(len(participantColumns))),
					Class("px-6 py-10 text-center text-gray-500"),
					g.Text(p.T("participants.empty")),
				),
			),
		)
	}
	return TBody(
		ID(ParticipantsTBodyID),
		Class("bg-white divide-y divide-gray-200"),
		g.Group(g.Map(list, func(pt participants.Participant) g.Node {
			return participantRow(p, pt)
		})),
	)
}

// statusLabel translates a known status label. Unknown labels are shown as
// recorded.
func statusLabel(p *i18n.Printer, label string) string {
	s := participants.Classify(label)
	if s == participants.StatusNeutral {
		return label
	}
	return p.T("participants.status." + s.String())
}

func participantRow(p *i18n.Printer, pt participants.Participant) g.Node {
	badge := viewtypes.StatusBadge(pt.Status)
	return Tr(
		ID("participant-"+itoa(pt.ID)),
		Data("status", participants.Classify(pt.Status).String()),
		Class("hover:bg-gray-50"),
		Td(Class("px-6 py-4 whitespace-nowrap font-medium text-gray-900"), g.Text(pt.Name)),
		Td(Class("px-6 py-4 whitespace-nowrap text-gray-600"), g.Text(pt.Email)),
		Td(Class("px-6 py-4 whitespace-nowrap text-gray-600"), g.Text(pt.Event)),
		Td(
			Class("px-6 py-4 whitespace-nowrap"),
			Span(
				Class("inline-flex items-center gap-1 rounded-full px-2.5 py-0.5 text-xs font-medium "+badge.Class),
				I(Class("fa-solid "+badge.Icon)),
				g.Text(statusLabel(p, pt.Status)),
			),
		),
		Td(Class("px-6 py-4 whitespace-nowrap text-gray-600"), g.El("time", g.Attr("datetime", pt.Date), g.Text(pt.Date))),
		Td(
			Class("px-6 py-4 whitespace-nowrap text-right text-sm"),
			Div(
				Class("flex justify-end gap-2"),
				Button(Type("button"), Class("p-2 text-gray-400 hover:text-blue-600"), Aria("label", p.T("participants.view")+" "+pt.Name), I(Class("fa-solid fa-eye"))),
				Button(Type("button"), Class("p-2 text-gray-400 hover:text-blue-600"), Aria("label", p.T("participants.edit")+" "+pt.Name), I(Class("fa-solid fa-pen"))),
			),
		),
	)
}
