// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures persisted by the project store
// and the core types used throughout the application.
package models

import (
	"time"
)

// ContentType is the target social-media format of a project. Each type maps
// to a fixed pixel canvas size.
type ContentType string

const (
	TypePostInstagram  ContentType = "Post-Instagram"
	TypeStoryInstagram ContentType = "Story-Instagram"
	TypePostFacebook   ContentType = "Post-Facebook"
	TypeStoryFacebook  ContentType = "Story-Facebook"
	TypeStatusWhatsApp ContentType = "Status-WhatsApp"
	TypeLogo           ContentType = "Logo"
)

// ContentTypes lists all supported formats in display order. Used to build
// the content-type selector in the studio form.
var ContentTypes = []ContentType{
	TypePostInstagram,
	TypeStoryInstagram,
	TypePostFacebook,
	TypeStoryFacebook,
	TypeStatusWhatsApp,
	TypeLogo,
}

// dimensions maps each content type to its canvas width and height.
var dimensions = map[ContentType][2]int{
	TypePostInstagram:  {1080, 1080},
	TypeStoryInstagram: {1080, 1920},
	TypePostFacebook:   {1200, 630},
	TypeStoryFacebook:  {1080, 1920},
	TypeStatusWhatsApp: {1080, 1920},
	TypeLogo:           {500, 500},
}

// Dimensions returns the pixel width and height for the content type.
// Unknown types fall back to the 1080x1080 square format.
func (t ContentType) Dimensions() (width, height int) {
	if d, ok := dimensions[t]; ok {
		return d[0], d[1]
	}
	return 1080, 1080
}

// Valid reports whether the content type is one of the supported formats.
func (t ContentType) Valid() bool {
	_, ok := dimensions[t]
	return ok
}

// ParseContentType returns the ContentType for a form value. Values outside
// the supported set are passed through unchanged; Dimensions() handles the
// fallback so a stored record keeps whatever type it was created with.
func ParseContentType(s string) ContentType {
	return ContentType(s)
}

// Project is a saved studio project: a rendered image artifact plus the
// metadata sidecar that accompanies it. The JSON field names are the on-disk
// sidecar contract (external tools read these files), so they must not change.
type Project struct {
	Name        string      `json:"name"`
	Type        ContentType `json:"type"`
	Text        string      `json:"text"`
	Description string      `json:"description"`
	ImagePath   string      `json:"imagem"`
	CreatedAt   time.Time   `json:"data"`
}
