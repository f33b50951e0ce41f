package participant_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

// HandleSearch filters the participant table by the $search signal and
// replaces the table body.
func HandleSearch() echo.HandlerFunc {
	return func(c echo.Context) error {
		// IMPORTANT: ReadSignals MUST happen BEFORE NewSSE.
		type Signals struct {
			Search string `json:"search"`
		}
		signals := &Signals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			slog.Warn("failed to read search signals", "error", err)
			return common.ErrBadRequest("invalid signals")
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		matches := participants.Filter(catalog.Participants(), signals.Search)
		return sse.PatchElementTempl(
			templates.ParticipantRows(common.Printer(c), matches),
			datastar.WithSelectorID(templates.ParticipantsTBodyID),
			datastar.WithModeReplace(),
		)
	}
}
