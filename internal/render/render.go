// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the studio interface.
// Page templates are parsed from an embedded filesystem and paired with the
// base layout; the login and register pages render standalone.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"lzarts/internal/markdown"
	"lzarts/internal/middleware"
	"lzarts/internal/models"
	"lzarts/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to studio templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav section (e.g., "studio", "projects")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution for studio pages.
type Renderer struct {
	templates map[string]*template.Template
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":    true,
	"register": true,
}

// funcMap holds the helpers available to all templates.
var funcMap = template.FuncMap{
	"activeClass": func(current, target string) string {
		if current == target {
			return "nav-link active"
		}
		return "nav-link"
	},
	// markdown renders a project description as HTML. On a conversion
	// error the raw text is shown escaped instead.
	"markdown": func(source string) template.HTML {
		html, err := markdown.ToHTML(source)
		if err != nil {
			return template.HTML(template.HTMLEscapeString(source))
		}
		return template.HTML(html)
	},
	// typeDims formats a content type's canvas size for display.
	"typeDims": func(t models.ContentType) string {
		w, h := t.Dimensions()
		return fmt.Sprintf("%d × %d", w, h)
	},
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with the base layout unless it
// renders standalone.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
				templateFS, "templates/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
				templateFS, "templates/base.html", "templates/"+name,
			)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full studio page. The CSRF token and session are injected
// from the request context when not already set.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.GetCSRFToken(r)

	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := tmpl.ExecuteTemplate(w, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
