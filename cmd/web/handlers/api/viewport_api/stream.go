package viewport_api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/viewport"
)

// KeepaliveInterval spaces the comments that keep proxies from closing an
// idle stream.
var KeepaliveInterval = 15 * time.Second

type revealSignals struct {
	Reveal map[string]bool `json:"reveal"`
}

type scrollSignals struct {
	Scrolled bool    `json:"scrolled"`
	ScrollY  float64 `json:"scrollY"`
}

type viewSignals struct {
	Reveal   map[string]bool `json:"reveal"`
	Scrolled bool            `json:"scrolled"`
	ScrollY  float64         `json:"scrollY"`
}

// HandleStream streams a view's tracker changes as Datastar signal patches.
// ?page= names the page so a view the server has forgotten can be reopened.
func HandleStream(hub *telemetry.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := viewID(c)
		if err != nil {
			return err
		}
		regions, ok := common.TelemetryRegions(c.QueryParam("page"))
		if !ok {
			return common.ErrBadRequest("unknown page")
		}
		if !hub.Open(id, regions...) {
			return common.ErrTooManyRequests("too many open views")
		}

		if !hub.AcquireStream(id) {
			return common.ErrTooManyRequests("too many open view streams")
		}
		defer hub.ReleaseStream(id)

		resp := c.Response()
		flusher, ok := resp.Writer.(http.Flusher)
		if !ok {
			return common.ErrInternal("streaming unsupported")
		}

		evtCh, unsubscribe, ok := hub.Subscribe(id)
		if !ok {
			return common.ErrNotFound("unknown view")
		}
		defer unsubscribe()

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(resp, c.Request())

		// Replay what happened before the stream connected.
		if snap, ok := hub.Snapshot(id); ok {
			if err := patch(sse, viewSignals{
				Reveal:   snap.Revealed,
				Scrolled: viewport.Scrolled(snap.ScrollY),
				ScrollY:  snap.ScrollY,
			}); err != nil {
				return nil
			}
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-c.Request().Context().Done():
				return nil
			case evt, ok := <-evtCh:
				if !ok {
					return nil
				}
				var err error
				switch evt.Typ {
				case telemetry.EventReveal:
					err = patch(sse, revealSignals{Reveal: map[string]bool{evt.Region: true}})
				case telemetry.EventScroll:
					err = patch(sse, scrollSignals{Scrolled: viewport.Scrolled(evt.ScrollY), ScrollY: evt.ScrollY})
				default:
					continue
				}
				if err != nil {
					slog.Debug("view stream closed", "view", id, "error", err)
					return nil
				}
			case <-ticker.C:
				hub.Touch(id)
				_, _ = fmt.Fprintf(resp, ": keepalive\n\n")
				flusher.Flush()
			}
		}
	}
}

func patch(sse *datastar.ServerSentEventGenerator, signals any) error {
	b, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}
	return sse.PatchSignals(b)
}
