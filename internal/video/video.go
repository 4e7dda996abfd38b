// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package video exports a fixed-duration MP4 clip from a single project
// image by shelling out to ffmpeg. There is no timeout or retry: the export
// either completes or fails with ffmpeg's output in the error.
package video

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

const (
	// clipSeconds is the fixed clip duration.
	clipSeconds = 5

	// clipFPS is the output frame rate.
	clipFPS = 24
)

// Exporter turns project images into short video clips.
type Exporter struct {
	ffmpegPath string
	outDir     string
}

// NewExporter creates a video exporter that writes clips into outDir.
// ffmpegPath may be a bare command name resolved via PATH.
func NewExporter(ffmpegPath, outDir string) *Exporter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Exporter{ffmpegPath: ffmpegPath, outDir: outDir}
}

// OutputPath returns the clip path for a project name.
func (e *Exporter) OutputPath(name string) string {
	return filepath.Join(e.outDir, name+".mp4")
}

// Export renders a clip showing the image for the fixed duration and returns
// the output path.
func (e *Exporter) Export(ctx context.Context, name, imagePath string) (string, error) {
	out := e.OutputPath(name)

	cmd := exec.CommandContext(ctx, e.ffmpegPath, exportArgs(imagePath, out)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("video export %s: %w: %s", name, err, output)
	}

	return out, nil
}

// exportArgs builds the ffmpeg argument list: loop the still image for the
// clip duration at the target frame rate. yuv420p is required for broad
// player compatibility; the scale filter pads odd dimensions for H.264.
func exportArgs(imagePath, outPath string) []string {
	return []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-t", strconv.Itoa(clipSeconds),
		"-r", strconv.Itoa(clipFPS),
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-pix_fmt", "yuv420p",
		outPath,
	}
}
