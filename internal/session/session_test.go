package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// testStore returns a session store backed by an in-process miniredis.
func testStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, false)
}

func TestSessionCreateAndGet(t *testing.T) {
	store := testStore(t)

	w := httptest.NewRecorder()
	ctx := context.Background()

	data := &Data{
		Username: "alice",
		Email:    "alice@example.com",
	}

	sessionID, err := store.Create(ctx, w, data)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sessionID == "" {
		t.Error("expected non-empty session ID")
	}

	// Verify the cookie was set.
	resp := w.Result()
	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			sessionCookie = c
			break
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if sessionCookie.Secure {
		t.Error("expected Secure=false for non-secure store")
	}

	// Get the session back.
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie)

	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session data, got nil")
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, want %q", got.Username, "alice")
	}
	if got.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "alice@example.com")
	}
	if got.Editing() {
		t.Error("new session must not be in editing state")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSessionGetWithoutCookie(t *testing.T) {
	store := testStore(t)

	req := httptest.NewRequest("GET", "/", nil)
	got, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session without cookie, got %+v", got)
	}
}

func TestSessionGetExpired(t *testing.T) {
	store := testStore(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "deadbeef"})

	got, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session for unknown ID, got %+v", got)
	}
}

// TestSessionEditLifecycle covers beginEdit/endEdit: the edit target lives
// in the session payload and is cleared after a successful update.
func TestSessionEditLifecycle(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	data := &Data{Username: "alice", Email: "alice@example.com"}
	if _, err := store.Create(ctx, w, data); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])

	// Begin editing a record.
	data.EditingProject = "Logo_0a1b2c3d"
	if err := store.Update(ctx, req, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Editing() || got.EditingProject != "Logo_0a1b2c3d" {
		t.Errorf("expected editing state for Logo_0a1b2c3d, got %+v", got)
	}

	// End editing.
	data.EditingProject = ""
	if err := store.Update(ctx, req, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err = store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Editing() {
		t.Errorf("expected editing state cleared, got %+v", got)
	}
}

func TestSessionUpdateWithoutCookie(t *testing.T) {
	store := testStore(t)

	req := httptest.NewRequest("GET", "/", nil)
	if err := store.Update(context.Background(), req, &Data{Username: "x"}); err == nil {
		t.Error("expected error updating a session without a cookie")
	}
}
