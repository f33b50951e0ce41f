package register

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/templates"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/registration"
)

var successMessage = flash.Message{
	Kind:  flash.KindSuccess,
	Title: "register.success.title",
	Body:  "register.success.description",
}

// HandleRegister accepts the registration form. Datastar submissions get an
// SSE response patching the form and a toast; plain posts get the page back
// with errors (422) or a redirect carrying a flash message.
func HandleRegister(sub *registration.Submitter, fm *flash.Manager, hub *telemetry.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form registration.Form
		if err := c.Bind(&form); err != nil {
			return common.ErrBadRequest("invalid form")
		}

		if common.IsDatastarRequest(c) {
			return submitDatastar(c, sub, form)
		}

		receipt, err := sub.Submit(c.Request().Context(), form)
		var verr *registration.ValidationError
		switch {
		case errors.As(err, &verr):
			pg := common.NewPage(c, hub, viewtypes.PageRegister, "register.page_title")
			return common.Render(c, http.StatusUnprocessableEntity, templates.RegisterPage(common.Printer(c), pg, form, verr.Errors))
		case err != nil:
			slog.Info("registration abandoned", "error", err)
			return nil
		}

		slog.Info("registration accepted", "receipt_id", receipt.ID)
		if err := fm.Add(c.Response(), c.Request(), successMessage); err != nil {
			slog.Warn("failed to save flash", "error", err)
		}
		return c.Redirect(http.StatusSeeOther, "/register")
	}
}

func submitDatastar(c echo.Context, sub *registration.Submitter, form registration.Form) error {
	p := common.Printer(c)

	// The body has been consumed by Bind; NewSSE flushes headers.
	common.SetSSEHeaders(c)
	sse := datastar.NewSSE(c.Response().Writer, c.Request())

	if errs := registration.Validate(form); errs != nil {
		return sse.PatchElementTempl(
			templates.RegistrationForm(p, form, errs),
			datastar.WithSelectorID(templates.RegistrationFormID),
			datastar.WithModeReplace(),
		)
	}

	receipt, err := sub.Submit(c.Request().Context(), form)
	if err != nil {
		// Validation already passed, so this is the client going away.
		slog.Info("registration abandoned", "error", err)
		return nil
	}
	slog.Info("registration accepted", "receipt_id", receipt.ID)

	if err := sse.PatchElementTempl(
		templates.RegistrationForm(p, registration.Form{}, nil),
		datastar.WithSelectorID(templates.RegistrationFormID),
		datastar.WithModeReplace(),
	); err != nil {
		return err
	}
	return sse.PatchElementTempl(
		templates.Toast(p, successMessage),
		datastar.WithSelectorID("toasts"),
		datastar.WithModeAppend(),
	)
}
