// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package canvas renders the flattened project image: a solid background,
// the caption text, and an optional freehand-drawing overlay exported by the
// browser canvas. The output is a single RGBA image ready for PNG encoding.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textOrigin is the fixed top-left position of the caption text block.
const (
	textOriginX = 50
	textOriginY = 50
)

// Options describes one render: canvas size, background color, caption text,
// and an optional drawing overlay composited over the text at the origin.
type Options struct {
	Width      int
	Height     int
	Background color.Color
	Text       string
	Overlay    image.Image
}

// Render composites the final image. Layer order matches the studio UI:
// background, then caption text, then the freehand overlay on top.
func Render(o Options) *image.RGBA {
	bg := o.Background
	if bg == nil {
		bg = color.White
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	drawText(img, o.Text)

	if o.Overlay != nil {
		draw.Draw(img, o.Overlay.Bounds(), o.Overlay, o.Overlay.Bounds().Min, draw.Over)
	}

	return img
}

// drawText writes the caption in black at the fixed text origin, one line
// per newline in the input.
func drawText(dst *image.RGBA, text string) {
	if text == "" {
		return
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
	}

	y := textOriginY + ascent
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(textOriginX, y)
		d.DrawString(line)
		y += lineHeight
	}
}

// ParseHexColor parses a "#rrggbb" color-picker value into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
