// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lzarts/internal/middleware"
	"lzarts/internal/models"
	"lzarts/internal/render"
	"lzarts/internal/session"
	"lzarts/internal/store"
)

// Projects groups the saved-project handlers: listing and caption editing.
type Projects struct {
	renderer *render.Renderer
	sessions *session.Store
	projects store.ProjectStore
	mediaDir string
}

// NewProjects creates a new Projects handler group.
func NewProjects(renderer *render.Renderer, sessions *session.Store, projects store.ProjectStore, mediaDir string) *Projects {
	return &Projects{
		renderer: renderer,
		sessions: sessions,
		projects: projects,
		mediaDir: mediaDir,
	}
}

// projectView pairs a record with the URL its image is served from.
type projectView struct {
	models.Project
	ImageURL string
}

// List renders the user's saved projects, oldest first.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	items, err := h.projects.List(sess.Username)
	if err != nil {
		slog.Error("project list failed", "user", sess.Username, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views := make([]projectView, 0, len(items))
	for _, p := range items {
		views = append(views, projectView{
			Project:  p,
			ImageURL: mediaURL(h.mediaDir, p.ImagePath),
		})
	}

	h.renderer.Page(w, r, "projects", &render.PageData{
		Title:   "My Projects",
		Section: "projects",
		Data:    map[string]any{"Projects": views},
	})
}

// EditPage opens a project for editing: the record is marked as the
// session's edit target and the prefilled form is rendered.
func (h *Projects) EditPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	name := chi.URLParam(r, "name")

	p, err := h.find(sess.Username, name)
	if err != nil {
		slog.Error("project lookup failed", "user", sess.Username, "project", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	sess.EditingProject = p.Name
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "edit", &render.PageData{
		Title:   "Edit Project",
		Section: "projects",
		Data: map[string]any{
			"Project": projectView{Project: *p, ImageURL: mediaURL(h.mediaDir, p.ImagePath)},
		},
	})
}

// EditSubmit saves new text and description for the record, clears the
// session's edit target, and shows the updated list. The image artifact is
// not regenerated.
func (h *Projects) EditSubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	name := chi.URLParam(r, "name")

	p, err := h.find(sess.Username, name)
	if err != nil {
		slog.Error("project lookup failed", "user", sess.Username, "project", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	if err := h.projects.Update(p, r.FormValue("text"), r.FormValue("description")); err != nil {
		slog.Error("project update failed", "project", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess.EditingProject = ""
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
	}

	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

// find returns the user's record with the given name, or nil when absent.
// The store interface is create/list/update, so lookup goes through List.
func (h *Projects) find(user, name string) (*models.Project, error) {
	items, err := h.projects.List(user)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, nil
}
