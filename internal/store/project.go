// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides persistence for studio projects. Each project is an
// image artifact plus a JSON sidecar sharing the same base name, kept in a
// per-user directory under the projects root:
//
//	<root>/<user>/<name>.png
//	<root>/<user>/<name>.json
//
// The ProjectStore interface keeps the calling code independent of the
// directory layout so a different backing store can be swapped in.
package store

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lzarts/internal/models"
)

// sidecarExt is the extension of the metadata file accompanying each image.
const sidecarExt = ".json"

// ProjectStore is the keyed store for project records, namespaced per user.
type ProjectStore interface {
	// Create renders a new project record from the given fields and image,
	// persisting both the image artifact and its sidecar.
	Create(user string, typ models.ContentType, text, description string, img image.Image) (*models.Project, error)

	// List returns the user's saved projects, re-reading the namespace
	// directory on every call.
	List(user string) ([]models.Project, error)

	// Update rewrites the project's sidecar with new text and description.
	// The image artifact is left untouched.
	Update(p *models.Project, text, description string) error
}

// FSStore is the directory-backed ProjectStore implementation.
type FSStore struct {
	root string
}

// NewFSStore creates a project store rooted at the given directory.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Root returns the projects root directory.
func (s *FSStore) Root() string {
	return s.root
}

// userDir returns the namespace directory for a user.
func (s *FSStore) userDir(user string) string {
	return filepath.Join(s.root, user)
}

// Create persists the image as PNG and writes the metadata sidecar next to
// it. The record name combines the content type with a random hex suffix so
// consecutive saves never collide in practice.
func (s *FSStore) Create(user string, typ models.ContentType, text, description string, img image.Image) (*models.Project, error) {
	if user == "" {
		return nil, fmt.Errorf("create project: empty user")
	}
	if img == nil {
		return nil, fmt.Errorf("create project: nil image")
	}

	dir := s.userDir(user)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	name := newProjectName(typ)
	p := &models.Project{
		Name:        name,
		Type:        typ,
		Text:        text,
		Description: description,
		ImagePath:   filepath.Join(dir, name+".png"),
		CreatedAt:   time.Now(),
	}

	f, err := os.Create(p.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("create project image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return nil, fmt.Errorf("encode project image: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close project image: %w", err)
	}

	if err := s.writeSidecar(p); err != nil {
		return nil, err
	}

	return p, nil
}

// List enumerates the user's namespace directory and decodes every sidecar
// found. Files without the sidecar extension (the images themselves) are
// skipped. A missing directory is created and yields an empty list, so the
// first visit to "My Projects" never errors.
func (s *FSStore) List(user string) ([]models.Project, error) {
	dir := s.userDir(user)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("list projects dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var projects []models.Project
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), sidecarExt) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read sidecar %s: %w", e.Name(), err)
		}
		var p models.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode sidecar %s: %w", e.Name(), err)
		}
		projects = append(projects, p)
	}

	// Directory enumeration order is platform-dependent; sort by creation
	// time (oldest first) so listings are deterministic.
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].Name < projects[j].Name
		}
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})

	return projects, nil
}

// Update mutates the text and description of an existing record and rewrites
// its sidecar in place. The image artifact is intentionally not regenerated,
// so the stored image keeps showing the text it was created with.
func (s *FSStore) Update(p *models.Project, text, description string) error {
	p.Text = text
	p.Description = description
	return s.writeSidecar(p)
}

// writeSidecar serializes the record to the JSON file next to its image.
func (s *FSStore) writeSidecar(p *models.Project) error {
	path := sidecarPath(p)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode sidecar %s: %w", p.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sidecar %s: %w", p.Name, err)
	}
	return nil
}

// sidecarPath derives the metadata file path from the image path.
func sidecarPath(p *models.Project) string {
	ext := filepath.Ext(p.ImagePath)
	return strings.TrimSuffix(p.ImagePath, ext) + sidecarExt
}

// newProjectName builds a record name from the content type and a random
// 8-character hex suffix. Uniqueness is probabilistic, not checked by lookup.
func newProjectName(typ models.ContentType) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%s", typ, hex.EncodeToString(u[:4]))
}
