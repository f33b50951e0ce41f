package viewport_api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
)

// maxEntriesPerReport bounds the work one POST can cause.
const maxEntriesPerReport = 64

func viewID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", common.ErrBadRequest("invalid view id")
	}
	return id.String(), nil
}

// HandleTelemetry accepts scroll offsets and intersection ratios from the
// browser and feeds them to the view's trackers.
func HandleTelemetry(hub *telemetry.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := viewID(c)
		if err != nil {
			return err
		}

		var report telemetry.Report
		if err := json.NewDecoder(c.Request().Body).Decode(&report); err != nil {
			return common.ErrBadRequest("invalid json")
		}
		if len(report.Entries) > maxEntriesPerReport {
			return common.ErrBadRequest("too many entries")
		}
		for _, e := range report.Entries {
			if e.Region == "" {
				return common.ErrBadRequest("missing region")
			}
		}

		if !hub.Report(id, report) {
			return common.ErrNotFound("unknown view")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
