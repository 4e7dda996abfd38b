// Package router sets up all HTTP routes and middleware chains for the
// studio server. Auth pages are public; the studio and project pages sit
// behind the session gate.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lzarts/internal/handlers"
	"lzarts/internal/middleware"
	"lzarts/internal/session"
	"lzarts/web"
)

// maxRequestBytes caps whole request bodies: the overlay upload limit plus
// headroom for the other form fields. Enforced before any form parsing.
const maxRequestBytes = handlers.MaxUploadSize + 64<<10

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. mediaDir is the projects root served at /media/.
func New(sessionStore *session.Store, auth *handlers.Auth, studio *handlers.Studio, projects *handlers.Projects, mediaDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.MaxBytes(maxRequestBytes))
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Auth pages — accessible without a session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Get("/register", auth.RegisterPage)
		r.Post("/register", auth.RegisterSubmit)
	})

	// Studio and projects — require a session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.Use(middleware.RequireAuth)

		r.Get("/", rootRedirect)

		r.Route("/studio", func(r chi.Router) {
			r.Get("/", studio.CreatePage)
			r.Post("/", studio.CreateSubmit)
			r.Post("/logo", studio.GenerateLogo)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.List)
			r.Get("/{name}/edit", projects.EditPage)
			r.Post("/{name}", projects.EditSubmit)
		})

		// Saved artifacts (images, exported videos).
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
	})

	return r
}

// rootRedirect sends signed-in visitors to the studio.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/studio", http.StatusSeeOther)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
