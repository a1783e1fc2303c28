// Package extractor recovers structured match data from betting screenshots
// via a vision-capable chat-completion API.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptdeck/promptdeck/internal/matchdata"
)

const (
	apiKeyPrefix    = "sk-"
	apiKeyMinLength = 21
)

// ValidateAPIKey performs the shape check applied before any network call:
// an obviously malformed credential fails fast instead of making a doomed
// remote request.
func ValidateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("API key is required")
	}
	if !strings.HasPrefix(key, apiKeyPrefix) || len(key) < apiKeyMinLength {
		return fmt.Errorf("invalid API key format: must start with %q and be at least %d characters long",
			apiKeyPrefix, apiKeyMinLength)
	}
	return nil
}

// Extractor runs the per-image extraction pipeline.
type Extractor struct {
	client *Client
	maxDim int
}

// Config holds configuration for the extractor.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// MaxImageDimension bounds screenshot size before upload.
	MaxImageDimension int
}

// New creates a new Extractor.
func New(cfg Config) *Extractor {
	maxDim := cfg.MaxImageDimension
	if maxDim <= 0 {
		maxDim = DefaultMaxImageDimension
	}
	return &Extractor{
		client: NewClient(ClientConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}),
		maxDim: maxDim,
	}
}

// ExtractFromImages scans each screenshot independently, one remote call per
// image, and accumulates the recovered match records. Failure on any image
// aborts the whole batch: partial results are never returned, so the user
// can fix the failing screenshot and resubmit.
func (e *Extractor) ExtractFromImages(ctx context.Context, images [][]byte, sport string) ([]matchdata.Match, error) {
	var all []matchdata.Match

	for i, data := range images {
		slog.Info("extracting matches from image", "sport", sport, "image", i+1, "total", len(images))

		matches, err := e.extractFromImage(ctx, data, sport)
		if err != nil {
			return nil, fmt.Errorf("extract %s matches from image %d: %w", sport, i+1, err)
		}

		slog.Info("image extraction complete", "image", i+1, "matches", len(matches))
		all = append(all, matches...)
	}

	return all, nil
}

func (e *Extractor) extractFromImage(ctx context.Context, data []byte, sport string) ([]matchdata.Match, error) {
	dataURI, err := OptimizeImage(data, e.maxDim)
	if err != nil {
		return nil, err
	}

	response, err := e.client.Complete(ctx, []ContentPart{
		TextPart(ExtractionInstruction(sport)),
		ImagePart(dataURI),
	}, extractionMaxTokens, extractionTemperature)
	if err != nil {
		return nil, err
	}

	matches, err := ParseResponse(response)
	if err != nil {
		return nil, err
	}

	// The instruction asks the model to echo the sport, but it is the
	// user's selection that is authoritative.
	for i := range matches {
		matches[i].Sport = sport
	}
	return matches, nil
}
