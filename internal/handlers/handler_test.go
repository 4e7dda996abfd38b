// handler_test.go provides shared test infrastructure for handler tests.
// The full middleware chain runs against an in-process miniredis and a
// temporary projects directory, so no external services are needed.
package handlers

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"lzarts/internal/ai"
	"lzarts/internal/middleware"
	"lzarts/internal/render"
	"lzarts/internal/session"
	"lzarts/internal/store"
	"lzarts/internal/video"
)

// stubLogoProvider implements ai.LogoProvider for studio tests.
type stubLogoProvider struct {
	url string
	err error
}

func (s *stubLogoProvider) Name() string { return "stub" }
func (s *stubLogoProvider) GenerateLogo(_ context.Context, _ string) (string, error) {
	return s.url, s.err
}

// testApp wires the handlers behind the real middleware chain.
type testApp struct {
	srv      *httptest.Server
	client   *http.Client
	store    *store.FSStore
	root     string
	sessions *session.Store
}

// newTestApp builds the app over miniredis and a temp projects directory.
// logos may be nil to exercise the unconfigured-AI path.
func newTestApp(t *testing.T, logos ai.LogoProvider) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	valkey := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { valkey.Close() })

	sessions := session.NewStore(valkey, false)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	root := t.TempDir()
	projects := store.NewFSStore(root)
	videos := video.NewExporter("ffmpeg-unavailable-in-tests", root)

	auth := NewAuth(renderer, sessions)
	studio := NewStudio(renderer, sessions, projects, videos, logos, root)
	projectHandlers := NewProjects(renderer, sessions, projects, root)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.MaxBytes(MaxUploadSize+64<<10))
	r.Use(middleware.LoadSession(sessions))

	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Get("/register", auth.RegisterPage)
		r.Post("/register", auth.RegisterSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.Use(middleware.RequireAuth)

		r.Get("/studio", studio.CreatePage)
		r.Post("/studio", studio.CreateSubmit)
		r.Post("/studio/logo", studio.GenerateLogo)

		r.Get("/projects", projectHandlers.List)
		r.Get("/projects/{name}/edit", projectHandlers.EditPage)
		r.Post("/projects/{name}", projectHandlers.EditSubmit)

		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(root))))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}

	return &testApp{
		srv:      srv,
		client:   &http.Client{Jar: jar},
		store:    projects,
		root:     root,
		sessions: sessions,
	}
}

// get fetches a path, following redirects, and returns the final response.
func (app *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := app.client.Get(app.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// csrfToken primes the CSRF cookie via a GET and returns the token.
func (app *testApp) csrfToken(t *testing.T) string {
	t.Helper()

	resp := app.get(t, "/login")
	resp.Body.Close()

	u, _ := url.Parse(app.srv.URL)
	for _, c := range app.client.Jar.Cookies(u) {
		if c.Name == middleware.CSRFCookieName {
			return c.Value
		}
	}
	t.Fatal("no CSRF cookie set")
	return ""
}

// postForm submits a urlencoded form with the CSRF token included,
// without following the redirect.
func (app *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()

	form.Set(middleware.CSRFFormField, app.csrfToken(t))

	req, err := http.NewRequest(http.MethodPost, app.srv.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	noRedirect := *app.client
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err := noRedirect.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// login signs the user in and asserts the redirect to the studio.
func (app *testApp) login(t *testing.T, email, password string) {
	t.Helper()

	resp := app.postForm(t, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/studio" {
		t.Fatalf("login redirect = %q, want /studio", loc)
	}
}
