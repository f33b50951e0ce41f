package common

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
)

// TelemetryRegions converts a page's reveal regions for the hub.
func TelemetryRegions(page string) ([]telemetry.Region, bool) {
	regions, ok := viewtypes.PageRegions(page)
	if !ok {
		return nil, false
	}
	out := make([]telemetry.Region, 0, len(regions))
	for _, r := range regions {
		out = append(out, telemetry.Region{Key: r.Key, Options: r.Options()})
	}
	return out, true
}

// NewPage starts a page view: it allocates a view id, registers the page's
// regions with the hub and fills the layout fields. When the hub is full the
// page still renders, without a view stream.
func NewPage(c echo.Context, hub *telemetry.Hub, name, titleKey string) templates.Page {
	pg := templates.Page{
		Name:     name,
		TitleKey: titleKey,
		Path:     Path(c),
		Year:     Now().Year(),
	}

	regions, _ := TelemetryRegions(name)
	id := uuid.NewString()
	if hub.Open(id, regions...) {
		pg.ViewID = id
	} else {
		slog.Warn("view limit reached; rendering without view stream", "page", name)
	}
	return pg
}
