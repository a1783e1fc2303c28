// Package generator turns validated match records into analysis prompts.
// Each prompt is a deterministic data header followed by a body produced
// either remotely or from a local sport-specific template.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/extractor"
	"github.com/promptdeck/promptdeck/internal/matchdata"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

const generationTemperature = 0.2

// DefaultDelay is the pause between consecutive remote generations.
const DefaultDelay = time.Second

// ProgressFunc is reported once per match, before that match is processed.
type ProgressFunc func(current, total int, label string)

// SinkFunc receives each finished prompt immediately, so that a failure
// partway through a long batch still leaves the earlier prompts persisted.
type SinkFunc func(prompt.Prompt) error

// Generator produces one prompt per validated match.
type Generator struct {
	client *extractor.Client
	delay  time.Duration
}

// Config holds configuration for the generator. A nil Client keeps the
// generator fully offline: every body comes from the local templates.
type Config struct {
	Client *extractor.Client
	Delay  time.Duration
}

// New creates a new Generator.
func New(cfg Config) *Generator {
	delay := cfg.Delay
	if delay < 0 {
		delay = 0
	}
	return &Generator{client: cfg.Client, delay: delay}
}

// GenerateAll processes the matches strictly in order, one at a time, with
// the configured delay between them. A remote failure on one match never
// aborts the batch: that match falls back to its local template. Only a sink
// error (persistence) or context cancellation stops the run early; the
// prompts produced so far are returned either way.
func (g *Generator) GenerateAll(ctx context.Context, matches []matchdata.Match, sport string, progress ProgressFunc, sink SinkFunc) ([]prompt.Prompt, error) {
	var out []prompt.Prompt

	for i, m := range matches {
		if progress != nil {
			progress(i+1, len(matches), m.Label())
		}

		p := g.generate(ctx, m, sport)
		if sink != nil {
			if err := sink(p); err != nil {
				return out, fmt.Errorf("persist prompt for %s: %w", m.Label(), err)
			}
		}
		out = append(out, p)
		slog.Info("prompt generated", "match", m.Label(), "current", i+1, "total", len(matches))

		if i < len(matches)-1 && g.delay > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(g.delay):
			}
		}
	}

	return out, nil
}

// Generate builds the prompt record for a single match.
func (g *Generator) Generate(ctx context.Context, m matchdata.Match, sport string) prompt.Prompt {
	return g.generate(ctx, m, sport)
}

func (g *Generator) generate(ctx context.Context, m matchdata.Match, sport string) prompt.Prompt {
	content := Header(m) + "\n---\n\n" + g.body(ctx, m, sport)
	title := fmt.Sprintf("%s - %s Analysis", m.Label(), sport)
	tags := []string{sport, prompt.TagAIGenerated, "match-analysis", m.TeamA, m.TeamB}
	return prompt.New(title, content, sport, prompt.TypeSpecific, tags)
}

func (g *Generator) body(ctx context.Context, m matchdata.Match, sport string) string {
	if g.client == nil {
		return FallbackBody(m, sport)
	}

	text, err := g.client.Complete(ctx, []extractor.ContentPart{
		extractor.TextPart(promptRequest(m, sport)),
	}, 0, generationTemperature)
	if err != nil {
		slog.Warn("remote prompt generation failed, using local template",
			"match", m.Label(), "error", err)
		return FallbackBody(m, sport)
	}
	return strings.TrimSpace(text)
}
