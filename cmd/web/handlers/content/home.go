package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
)

func HandleHomePage(hub *telemetry.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		pg := common.NewPage(c, hub, viewtypes.PageHome, "")
		return common.Render(c, http.StatusOK, templates.HomePage(common.Printer(c), pg, catalog.Sample().Features))
	}
}
