package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/text/language"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/ctxkeys"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/api/participant_api"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/api/viewport_api"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/content"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/register"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	staticpkg "github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/web/utils/static"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/config"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/registration"
)

// LangCookie remembers a language picked with ?lang=.
const LangCookie = "lang"

type Webserver struct {
	*echo.Echo
	flash         *flash.Manager
	staticCache   *staticpkg.StaticCache
	telemetryHub  *telemetry.Hub
	submitter     *registration.Submitter
	defaultLocale language.Tag
}

func NewWebserver(ctx context.Context, conf *config.Config, fm *flash.Manager, hub *telemetry.Hub) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	locale, ok := i18n.Parse(conf.DefaultLocale)
	if !ok {
		locale = i18n.Supported[0]
	}

	webserver := &Webserver{
		Echo:          e,
		flash:         fm,
		staticCache:   staticCache,
		telemetryHub:  hub,
		submitter:     registration.NewSubmitter(conf.SubmitDelay, slog.Default()),
		defaultLocale: locale,
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "webserver ready", "default_locale", locale.String())
	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/views/:id/stream"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/api/views/:id/telemetry",
				"/api/views/:id/stream",
				"/healthz":
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
	s.Use(s.languageMiddleware)

	return nil
}

// languageMiddleware resolves the request language and stores its printer
// and the request path in the request context for handlers and templates.
func (s *Webserver) languageMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var cookie string
		if ck, err := req.Cookie(LangCookie); err == nil {
			cookie = ck.Value
		}
		tag, persist := i18n.Resolve(c.QueryParam("lang"), cookie, req.Header.Get("Accept-Language"), s.defaultLocale)
		p := i18n.NewPrinter(tag)

		if persist && p.Lang() != cookie {
			c.SetCookie(&http.Cookie{
				Name:     LangCookie,
				Value:    p.Lang(),
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		h := c.Response().Header()
		h.Set("Content-Language", p.Lang())
		h.Add(echo.HeaderVary, "Accept-Language")
		h.Add(echo.HeaderVary, "Cookie")

		ctx := context.WithValue(req.Context(), ctxkeys.Printer, p)
		ctx = context.WithValue(ctx, ctxkeys.Path, req.URL.Path)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func (s *Webserver) registerRoutes() error {
	apiGroup := s.Group("/api")
	apiGroup.GET("/participants", participant_api.HandleSearch())
	apiGroup.GET("/views/:id/stream", viewport_api.HandleStream(s.telemetryHub))
	apiGroup.POST("/views/:id/telemetry", viewport_api.HandleTelemetry(s.telemetryHub))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// Registration
	s.GET("/register", content.HandleRegisterPage(s.telemetryHub, s.flash))
	s.POST("/register", register.HandleRegister(s.submitter, s.flash, s.telemetryHub))

	// Dashboard
	s.GET("/dashboard", content.HandleDashboardPage(s.telemetryHub))
	s.GET("/dashboard/export.csv", participant_api.HandleExport())

	s.GET("/", content.HandleHomePage(s.telemetryHub))

	return nil
}

