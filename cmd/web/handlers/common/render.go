package common

import (
	"bytes"
	"fmt"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/ctxkeys"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

// Render writes comp as an HTML response with the given status. The
// component is rendered to a buffer first so a render error can still
// become a 500.
func Render(c echo.Context, status int, comp templ.Component) error {
	var buf bytes.Buffer
	if err := comp.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("render %s: %w", c.Path(), err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Printer returns the request's message printer, set by the language
// middleware. It falls back to the default language.
func Printer(c echo.Context) *i18n.Printer {
	if p, ok := c.Request().Context().Value(ctxkeys.Printer).(*i18n.Printer); ok {
		return p
	}
	return i18n.NewPrinter(i18n.Supported[0])
}

// Path returns the request path recorded by the language middleware.
func Path(c echo.Context) string {
	if p, ok := c.Request().Context().Value(ctxkeys.Path).(string); ok {
		return p
	}
	return c.Request().URL.Path
}

// Now is the clock used for footer years; tests replace it.
var Now = time.Now
