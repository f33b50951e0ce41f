package web

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/flash"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/handlers/common"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/internal/telemetry"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/config"
)

func newTestServer(t *testing.T) (*Webserver, *telemetry.Hub) {
	t.Helper()
	conf := &config.Config{
		WebServerPort:  8080,
		DefaultLocale:  "fr",
		SubmitDelay:    0,
		ViewStaleAfter: time.Minute,
		LogLevel:       "info",
	}
	hub := telemetry.NewHub(conf.ViewStaleAfter)
	s, err := NewWebserver(context.Background(), conf, flash.NewManager("0123456789abcdef0123456789abcdef"), hub)
	require.NoError(t, err)
	return s, hub
}

func do(s *Webserver, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func byID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := byID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func validForm() url.Values {
	return url.Values{
		"firstName": {"Sophie"},
		"lastName":  {"Martin"},
		"email":     {"sophie@example.com"},
		"phone":     {"0612345678"},
		"birthDate": {"1990-04-02"},
		"event":     {"conference"},
	}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPagesRender(t *testing.T) {
	s, hub := newTestServer(t)

	for _, path := range []string{"/", "/register", "/dashboard"} {
		t.Run(path, func(t *testing.T) {
			rec := do(s, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
			require.Equal(t, "fr", rec.Header().Get("Content-Language"))

			doc := parse(t, rec.Body.String())
			rights := byID(doc, "footer-rights")
			require.NotNil(t, rights)
			require.Equal(t, "© "+strconv.Itoa(common.Now().Year())+" InscriPro. Tous droits réservés.", text(rights))
		})
	}
	require.Equal(t, 3, hub.Views(), "every page view opens a telemetry view")
}

func TestHomePage_BodyCarriesView(t *testing.T) {
	s, hub := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Simplifiez vos")
	require.Contains(t, body, "data-view=")
	require.Contains(t, body, "/stream?page=home")

	require.Equal(t, 1, hub.Views())
}

func TestLanguageSelection(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("query sets cookie", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", rec.Header().Get("Content-Language"))
		require.Contains(t, rec.Body.String(), "Simplify your")
		require.Contains(t, rec.Body.String(), "© "+strconv.Itoa(common.Now().Year())+" InscriPro. All rights reserved.")

		var found bool
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == LangCookie {
				found = true
				require.Equal(t, "en", ck.Value)
			}
		}
		require.True(t, found, "lang cookie")
	})

	t.Run("cookie is honoured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookie, Value: "en"})
		rec := do(s, req)
		require.Equal(t, "en", rec.Header().Get("Content-Language"))
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("accept language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
		rec := do(s, req)
		require.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("default", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "fr", rec.Header().Get("Content-Language"))
	})
}

func TestRegister_InvalidPlainPost(t *testing.T) {
	s, _ := newTestServer(t)

	form := validForm()
	form.Set("firstName", "S")
	form.Set("email", "not-an-email")
	rec := do(s, postForm("/register", form))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	doc := parse(t, rec.Body.String())
	first := byID(doc, "error-firstName")
	require.NotNil(t, first)
	require.Equal(t, "Le prénom doit comporter au moins 2 caractères.", text(first))
	require.NotNil(t, byID(doc, "error-email"))
	require.Nil(t, byID(doc, "error-lastName"))

	// Submitted values are kept.
	input := byID(doc, "field-lastName")
	require.NotNil(t, input)
	require.Equal(t, "Martin", attr(input, "value"))
}

func TestRegister_ValidPlainPostRedirectsWithFlash(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, postForm("/register", validForm()))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/register", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	page := do(s, req)
	require.Equal(t, http.StatusOK, page.Code)
	require.Contains(t, page.Body.String(), "Inscription réussie!")
}

func TestRegister_Datastar(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("invalid patches the form", func(t *testing.T) {
		form := validForm()
		form.Set("event", "")
		req := postForm("/register", form)
		req.Header.Set("Datastar-Request", "true")
		rec := do(s, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"))
		body := rec.Body.String()
		require.Contains(t, body, "event: datastar-patch-elements")
		require.Contains(t, body, "error-event")
		require.NotContains(t, body, "toasts")
	})

	t.Run("valid resets the form and appends a toast", func(t *testing.T) {
		req := postForm("/register", validForm())
		req.Header.Set("Datastar-Request", "true")
		rec := do(s, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Equal(t, 2, strings.Count(body, "event: datastar-patch-elements"))
		require.Contains(t, body, "selector #toasts")
		require.Contains(t, body, "mode append")
		require.Contains(t, body, "Inscription réussie!")
		require.NotContains(t, body, "Sophie")
	})
}

func TestParticipantSearch(t *testing.T) {
	s, _ := newTestServer(t)

	search := func(term string) string {
		q := url.Values{"datastar": {`{"search":"` + term + `"}`}}
		rec := do(s, httptest.NewRequest(http.MethodGet, "/api/participants?"+q.Encode(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	body := search("sophie")
	require.Contains(t, body, "event: datastar-patch-elements")
	require.Contains(t, body, "participant-1")
	require.NotContains(t, body, "participant-2")

	body = search("zzz")
	require.Contains(t, body, "participants-empty")
	require.Contains(t, body, "Aucun résultat trouvé")

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/participants?datastar=%7Bnope", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard_QueryPrefiltersTable(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/dashboard?q=atelier", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec.Body.String())
	require.NotNil(t, byID(doc, "participant-2"))
	require.NotNil(t, byID(doc, "participant-6"))
	require.Nil(t, byID(doc, "participant-1"))

	row := byID(doc, "participant-4")
	require.Nil(t, row)
}

func TestDashboard_StatusLabelsFollowLanguage(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/dashboard?lang=en", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec.Body.String())

	confirmed := byID(doc, "participant-1")
	require.NotNil(t, confirmed)
	require.Equal(t, "confirmed", attr(confirmed, "data-status"))
	require.Contains(t, text(confirmed), "Confirmed")
	require.NotContains(t, text(confirmed), "Confirmé")
	require.Contains(t, text(byID(doc, "participant-2")), "Pending")
	require.Contains(t, text(byID(doc, "participant-4")), "Cancelled")

	rec = do(s, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Contains(t, text(byID(parse(t, rec.Body.String()), "participant-4")), "Annulé")
}

func TestExportCSV(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/dashboard/export.csv?q=conf%C3%A9rence", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "participants.csv")

	body := strings.TrimPrefix(rec.Body.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "id,Nom,Email,Événement,Statut,Date", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "1,Sophie Martin,"))
	require.True(t, strings.HasPrefix(lines[2], "5,Camille Petit,"))
}

func TestTelemetry(t *testing.T) {
	s, hub := newTestServer(t)

	regions, ok := common.TelemetryRegions(viewtypes.PageHome)
	require.True(t, ok)
	id := uuid.NewString()
	require.True(t, hub.Open(id, regions...))

	post := func(id, body string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/views/"+id+"/telemetry", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return do(s, req).Code
	}

	require.Equal(t, http.StatusNoContent, post(id, `{"scrollY":40,"entries":[{"region":"heroTitle","ratio":0.5}]}`))
	snap, ok := hub.Snapshot(id)
	require.True(t, ok)
	require.Equal(t, 40.0, snap.ScrollY)
	require.True(t, snap.Revealed["heroTitle"])
	require.False(t, snap.Revealed["cta"])

	require.Equal(t, http.StatusNotFound, post(uuid.NewString(), `{"scrollY":1}`))
	require.Equal(t, http.StatusBadRequest, post("not-a-view", `{"scrollY":1}`))
	require.Equal(t, http.StatusBadRequest, post(id, `{"scrollY":`))
	require.Equal(t, http.StatusBadRequest, post(id, `{"entries":[{"ratio":1}]}`))
}

func TestViewStream(t *testing.T) {
	s, hub := newTestServer(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	id := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/views/"+id+"/stream?page=home", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := bufio.NewReader(resp.Body)
	nextSignals := func() string {
		for {
			line, err := r.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: signals ") {
				return line
			}
		}
	}

	// The stream reopens the view and starts with its snapshot.
	first := nextSignals()
	require.Contains(t, first, `"heroTitle":false`)
	require.Contains(t, first, `"scrolled":false`)

	y := 120.0
	require.True(t, hub.Report(id, telemetry.Report{
		ScrollY: &y,
		Entries: []telemetry.Entry{{Region: "features", Ratio: 0.4}},
	}))

	got := nextSignals() + nextSignals()
	require.Contains(t, got, `"scrolled":true`)
	require.Contains(t, got, `"features":true`)
}

func TestViewStream_BadRequests(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/views/nope/stream?page=home", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/views/"+uuid.NewString()+"/stream?page=admin", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthzAndStatic(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = do(s, httptest.NewRequest(http.MethodGet, "/static/dist/main.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
