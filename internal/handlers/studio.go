// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"image"
	_ "image/png" // register PNG decoder for overlay uploads
	"log/slog"
	"net/http"
	"path/filepath"

	"lzarts/internal/ai"
	"lzarts/internal/canvas"
	"lzarts/internal/middleware"
	"lzarts/internal/models"
	"lzarts/internal/render"
	"lzarts/internal/session"
	"lzarts/internal/store"
	"lzarts/internal/video"
)

const (
	// MaxUploadSize caps the freehand-overlay upload (10 MB). The router caps
	// whole request bodies slightly above this, so oversized uploads are
	// rejected before any form parsing.
	MaxUploadSize = 10 << 20

	// defaultBackground matches the color picker's initial value.
	defaultBackground = "#ffffff"
)

// Studio groups the project-creation handlers: the create form, image
// generation with optional video export, and AI logo generation.
type Studio struct {
	renderer *render.Renderer
	sessions *session.Store
	projects store.ProjectStore
	videos   *video.Exporter
	logos    ai.LogoProvider // nil when no API key is configured
	mediaDir string          // projects root, for building /media/ URLs
}

// NewStudio creates a new Studio handler group.
func NewStudio(renderer *render.Renderer, sessions *session.Store, projects store.ProjectStore, videos *video.Exporter, logos ai.LogoProvider, mediaDir string) *Studio {
	return &Studio{
		renderer: renderer,
		sessions: sessions,
		projects: projects,
		videos:   videos,
		logos:    logos,
		mediaDir: mediaDir,
	}
}

// studioData returns the page data every studio render needs, with the form
// fields at their initial values.
func studioData() map[string]any {
	return map[string]any{
		"ContentTypes": models.ContentTypes,
		"SelectedType": models.TypePostInstagram,
		"Text":         "",
		"Description":  "",
		"Background":   defaultBackground,
		"LogoPrompt":   "",
	}
}

// CreatePage renders the project creation form.
func (s *Studio) CreatePage(w http.ResponseWriter, r *http.Request) {
	s.renderer.Page(w, r, "studio", &render.PageData{
		Title:   "Create Project",
		Section: "studio",
		Data:    studioData(),
	})
}

// CreateSubmit renders the image from the form inputs, saves the project,
// and optionally exports a video clip. The page re-renders with a preview
// of the saved artifact.
func (s *Studio) CreateSubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	// Oversized bodies get a 413 from the CSRF middleware's form parse, so
	// a failure here means the body is malformed rather than too large.
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.renderError(w, r, studioData(), "Could not read the submitted form.")
		return
	}

	typ := models.ParseContentType(r.FormValue("type"))
	text := r.FormValue("text")
	description := r.FormValue("description")

	background := r.FormValue("background")
	if background == "" {
		background = defaultBackground
	}

	data := studioData()
	data["SelectedType"] = typ
	data["Text"] = text
	data["Description"] = description
	data["Background"] = background

	bg, err := canvas.ParseHexColor(background)
	if err != nil {
		s.renderError(w, r, data, "Invalid background color.")
		return
	}

	// The drawing overlay is optional: the browser only submits a file when
	// the user actually drew something.
	var overlay image.Image
	if file, _, err := r.FormFile("overlay"); err == nil {
		overlay, _, err = image.Decode(file)
		file.Close()
		if err != nil {
			s.renderError(w, r, data, "Could not read the drawing overlay. Export the canvas as PNG and try again.")
			return
		}
	}

	width, height := typ.Dimensions()
	img := canvas.Render(canvas.Options{
		Width:      width,
		Height:     height,
		Background: bg,
		Text:       text,
		Overlay:    overlay,
	})

	p, err := s.projects.Create(sess.Username, typ, text, description, img)
	if err != nil {
		slog.Error("project create failed", "user", sess.Username, "error", err)
		s.renderError(w, r, data, "Could not save the project.")
		return
	}

	data["Saved"] = p
	data["ImageURL"] = mediaURL(s.mediaDir, p.ImagePath)

	flashes := []render.Flash{{Type: "success", Message: "Project saved."}}

	if r.FormValue("video") != "" {
		videoPath, err := s.videos.Export(r.Context(), p.Name, p.ImagePath)
		if err != nil {
			slog.Error("video export failed", "project", p.Name, "error", err)
			flashes = append(flashes, render.Flash{Type: "error", Message: "The image was saved but the video export failed."})
		} else {
			data["VideoURL"] = mediaURL(s.mediaDir, videoPath)
		}
	}

	s.renderer.Page(w, r, "studio", &render.PageData{
		Title:   "Create Project",
		Section: "studio",
		Data:    data,
		Flashes: flashes,
	})
}

// GenerateLogo sends the prompt to the AI provider and shows the hosted
// image URL on success. Failures surface as a user-visible message with no
// retry or fallback.
func (s *Studio) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	prompt := r.FormValue("prompt")

	data := studioData()
	data["LogoPrompt"] = prompt

	if prompt == "" {
		s.renderError(w, r, data, "Describe the logo you want to generate.")
		return
	}

	if s.logos == nil {
		s.renderError(w, r, data, "AI logo generation is not configured.")
		return
	}

	logoURL, err := s.logos.GenerateLogo(r.Context(), prompt)
	if err != nil {
		slog.Error("ai logo generation failed", "provider", s.logos.Name(), "error", err)
		s.renderError(w, r, data, "Could not generate the logo with AI. Check your API key.")
		return
	}

	data["LogoURL"] = logoURL

	s.renderer.Page(w, r, "studio", &render.PageData{
		Title:   "Create Project",
		Section: "studio",
		Data:    data,
	})
}

// renderError re-renders the studio page with an error flash.
func (s *Studio) renderError(w http.ResponseWriter, r *http.Request, data map[string]any, msg string) {
	s.renderer.Page(w, r, "studio", &render.PageData{
		Title:   "Create Project",
		Section: "studio",
		Data:    data,
		Flashes: []render.Flash{{Type: "error", Message: msg}},
	})
}

// mediaURL maps an artifact path under the projects root to its /media/ URL.
func mediaURL(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	return "/media/" + filepath.ToSlash(rel)
}
