package flash

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func flashCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == SessionName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionName)
	return nil
}

func TestManager_AddThenPop(t *testing.T) {
	m := NewManager("test-secret")

	req := httptest.NewRequest("POST", "http://example.com/register", nil)
	rr := httptest.NewRecorder()
	msg := Message{Kind: KindSuccess, Title: "register.success.title", Body: "register.success.description"}
	require.NoError(t, m.Add(rr, req, msg))

	cookie := flashCookie(t, rr.Result())
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)

	req2 := httptest.NewRequest("GET", "http://example.com/register", nil)
	req2.AddCookie(cookie)
	rr2 := httptest.NewRecorder()
	require.Equal(t, []Message{msg}, m.Pop(rr2, req2))

	// The cleared session is written back; replaying it yields nothing.
	cleared := flashCookie(t, rr2.Result())
	req3 := httptest.NewRequest("GET", "http://example.com/register", nil)
	req3.AddCookie(cleared)
	require.Empty(t, m.Pop(httptest.NewRecorder(), req3))
}

func TestManager_PopWithoutCookie(t *testing.T) {
	m := NewManager("test-secret")
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	require.Empty(t, m.Pop(httptest.NewRecorder(), req))
}

func TestManager_PopRejectsForeignSecret(t *testing.T) {
	writer := NewManager("secret-one")
	reader := NewManager("secret-two")

	req := httptest.NewRequest("POST", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	require.NoError(t, writer.Add(rr, req, Message{Kind: KindError, Title: "x"}))

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(flashCookie(t, rr.Result()))
	rr2 := httptest.NewRecorder()
	require.Empty(t, reader.Pop(rr2, req2))

	// The undecodable cookie is expired so it is not retried on every request.
	expired := flashCookie(t, rr2.Result())
	require.Equal(t, "", expired.Value)
	require.Less(t, expired.MaxAge, 0)
	require.Equal(t, "/", expired.Path)
}

func TestManager_SecureDetection(t *testing.T) {
	m := NewManager("")

	t.Run("tls implies secure", func(t *testing.T) {
		req := httptest.NewRequest("POST", "https://example.com/", nil)
		req.TLS = &tls.ConnectionState{}
		rr := httptest.NewRecorder()
		require.NoError(t, m.Add(rr, req, Message{Kind: KindSuccess}))
		require.True(t, flashCookie(t, rr.Result()).Secure)
	})

	t.Run("x-forwarded-proto implies secure", func(t *testing.T) {
		req := httptest.NewRequest("POST", "http://example.com/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rr := httptest.NewRecorder()
		require.NoError(t, m.Add(rr, req, Message{Kind: KindSuccess}))
		require.True(t, flashCookie(t, rr.Result()).Secure)
	})
}
