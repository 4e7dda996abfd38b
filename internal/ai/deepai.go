package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultDeepAIURL is the text-to-image endpoint used when no base URL is
// configured.
const defaultDeepAIURL = "https://api.deepai.org/api/text2img"

// deepAIProvider implements LogoProvider using the DeepAI text2img API
// (form-encoded POST with an api-key header).
type deepAIProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewDeepAI creates a DeepAI logo provider.
func NewDeepAI(cfg ProviderConfig) LogoProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultDeepAIURL
	}
	return &deepAIProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *deepAIProvider) Name() string { return "deepai" }

// GenerateLogo posts the prompt and returns the hosted image URL from the
// "output_url" field of the JSON response.
func (p *deepAIProvider) GenerateLogo(ctx context.Context, prompt string) (string, error) {
	form := url.Values{}
	form.Set("text", prompt)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("deepai request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("api-key", p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepai http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepai read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result deepAIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("deepai unmarshal: %w", err)
	}

	if result.OutputURL == "" {
		return "", fmt.Errorf("deepai: no image URL in response")
	}

	return result.OutputURL, nil
}

// deepAIResponse is the subset of the text2img response we consume.
type deepAIResponse struct {
	OutputURL string `json:"output_url"`
}
