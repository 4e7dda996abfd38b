// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides logo generation through an external text-to-image
// HTTP API. The provider is behind an interface so handlers can be tested
// without network access.
package ai

import (
	"context"
)

// LogoProvider generates a logo image from a text prompt and returns the
// URL where the hosted result can be viewed.
type LogoProvider interface {
	// GenerateLogo sends the prompt to the provider and returns the hosted
	// image URL. A non-200 response or a response without a usable URL is
	// an error surfaced to the user; there is no retry.
	GenerateLogo(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g., "deepai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}
