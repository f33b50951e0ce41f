package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/registration"
)

// HandleRegisterPage renders an empty registration form, plus any toast left
// by a redirected submission.
func HandleRegisterPage(hub *telemetry.Hub, fm *flash.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		pg := common.NewPage(c, hub, viewtypes.PageRegister, "register.page_title")
		pg.Toasts = fm.Pop(c.Response(), c.Request())
		return common.Render(c, http.StatusOK, templates.RegisterPage(common.Printer(c), pg, registration.Form{}, nil))
	}
}
