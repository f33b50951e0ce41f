package participant_api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/catalog"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

// utf8BOM lets spreadsheet tools detect the encoding of accented names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HandleExport downloads the participants matching ?q= as CSV, with headers
// in the request language.
func HandleExport() echo.HandlerFunc {
	return func(c echo.Context) error {
		matches := participants.Filter(catalog.Participants(), c.QueryParam("q"))

		var buf bytes.Buffer
		buf.Write(utf8BOM)
		if err := writeCSV(&buf, common.Printer(c), matches); err != nil {
			return common.ErrInternal("export failed")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="participants.csv"`)
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

func writeCSV(buf *bytes.Buffer, p *i18n.Printer, list []participants.Participant) error {
	w := csv.NewWriter(buf)
	header := []string{
		"id",
		p.T("participants.col.name"),
		p.T("participants.col.email"),
		p.T("participants.col.event"),
		p.T("participants.col.status"),
		p.T("participants.col.date"),
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, pt := range list {
		row := []string{strconv.Itoa(pt.ID), pt.Name, pt.Email, pt.Event, pt.Status, pt.Date}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", pt.ID, err)
		}
	}
	w.Flush()
	return w.Error()
}
