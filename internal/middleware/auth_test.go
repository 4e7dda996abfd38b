package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lzarts/internal/session"
)

func TestRequireAuthRedirectsWithoutSession(t *testing.T) {
	h := RequireAuth(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/studio", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, want /login", loc)
	}
}

func TestRequireAuthPassesWithSession(t *testing.T) {
	h := RequireAuth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/studio", nil)
	ctx := context.WithValue(req.Context(), SessionKey, &session.Data{Username: "alice"})
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestLoadSessionPutsDataInContext(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := session.NewStore(client, false)

	// Create a session and capture its cookie.
	w := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), w, &session.Data{Username: "alice"}); err != nil {
		t.Fatalf("session create: %v", err)
	}
	cookie := w.Result().Cookies()[0]

	var got *session.Data
	h := LoadSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.Username != "alice" {
		t.Errorf("expected session in context, got %+v", got)
	}
}

func TestLoadSessionWithoutCookie(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := session.NewStore(client, false)

	var got *session.Data
	h := LoadSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromCtx(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got != nil {
		t.Errorf("expected nil session, got %+v", got)
	}
}
