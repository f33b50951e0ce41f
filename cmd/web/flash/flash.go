// Package flash carries one-shot messages across a redirect in a signed
// cookie, for browsers that submit the registration form without JavaScript.
package flash

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	SessionName = "inscripro_flash"
)

// Kind selects the toast style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one flash entry. Title and Body are catalog keys.
type Message struct {
	Kind  Kind
	Title string
	Body  string
}

func init() {
	gob.Register(Message{})
}

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	if secret == "" {
		secret = generateSecret()
	}
	return &Manager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// Add queues m for the next page rendered for this browser.
func (m *Manager) Add(w http.ResponseWriter, r *http.Request, msg Message) error {
	session, _ := m.store.Get(r, SessionName)

	// Determine if we're on HTTPS
	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}
	session.AddFlash(msg)
	return session.Save(r, w)
}

// Pop returns and clears the queued messages. A missing or tampered cookie
// yields no messages.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) []Message {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode flash session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		if cookieErr == nil {
			expire(w)
		}
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		slog.Warn("failed to clear flash session", "error", err)
	}

	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(Message); ok {
			out = append(out, msg)
		}
	}
	return out
}

// expire drops a cookie that can no longer be decoded, for example after the
// secret changed.
func expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
