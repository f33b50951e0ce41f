package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

// HandleDashboardPage renders the dashboard. ?q= pre-filters the participant
// table so the search works without JavaScript.
func HandleDashboardPage(hub *telemetry.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := c.QueryParam("q")
		sample := catalog.Sample()

		pg := common.NewPage(c, hub, viewtypes.PageDashboard, "dashboard.page_title")
		view := templates.DashboardView{
			Stats:        sample.Stats,
			Query:        q,
			Participants: participants.Filter(sample.Participants, q),
		}
		return common.Render(c, http.StatusOK, templates.DashboardPage(common.Printer(c), pg, view))
	}
}
