package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"lzarts/internal/middleware"
	"lzarts/internal/render"
	"lzarts/internal/session"
)

// Auth groups the login and registration HTTP handlers.
//
// There is no credential store: any non-empty email/password pair signs in,
// and registration accepts any non-empty triple without persisting anything.
// The session flag is a capability gate for the studio pages, not verified
// identity. Keep it that way unless real authentication becomes a requirement.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// If already signed in, go straight to the studio.
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/studio", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
	})
}

// LoginSubmit processes the login form. Both fields must be non-empty; the
// username becomes the local part of the email (everything before "@").
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title:   "Sign In",
			Flashes: []render.Flash{{Type: "error", Message: "Please fill in all fields."}},
		})
		return
	}

	username := strings.SplitN(email, "@", 2)[0]

	_, err := a.sessions.Create(r.Context(), w, &session.Data{
		Username: username,
		Email:    email,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/studio", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (a *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "register", &render.PageData{
		Title: "Register",
	})
}

// RegisterSubmit processes the registration form. All three fields must be
// non-empty; on success the user is told to sign in. Nothing is stored, so
// a registered user is indistinguishable from an unregistered one.
func (a *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		a.renderer.Page(w, r, "register", &render.PageData{
			Title:   "Register",
			Flashes: []render.Flash{{Type: "error", Message: "Please fill in all fields."}},
		})
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title:   "Sign In",
		Flashes: []render.Flash{{Type: "success", Message: "Registration complete. Sign in to continue."}},
	})
}
