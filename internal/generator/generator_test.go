package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/extractor"
	"github.com/promptdeck/promptdeck/internal/matchdata"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

func validatedMatch(t *testing.T, m matchdata.Match) matchdata.Match {
	t.Helper()
	out, err := matchdata.Validate([]matchdata.Match{m})
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

func TestHeader(t *testing.T) {
	t.Run("populated markets rendered, absent markets omitted", func(t *testing.T) {
		m := validatedMatch(t, matchdata.Match{
			TeamA: "Real Madrid",
			TeamB: "Barcelona",
			Odds: &matchdata.Odds{
				Main1X2:    &matchdata.Market1X2{Home: "1.80", Draw: "3.50", Away: "4.20"},
				TotalGoals: &matchdata.MarketTotals{Over15: "1.25", Under15: "3.90"},
			},
		})

		h := Header(m)
		assert.Contains(t, h, "🏆 **MATCH:** Real Madrid vs Barcelona")
		assert.Contains(t, h, "Real Madrid 1.80 | Draw 3.50 | Barcelona 4.20")
		assert.Contains(t, h, "**Over/Under 1.5:** 1.25 / 3.90")

		// Markets absent from the screenshot leave no trace.
		assert.NotContains(t, h, "BTTS")
		assert.NotContains(t, h, "Over/Under 2.5")
		assert.NotContains(t, h, "null")
		assert.NotContains(t, h, "N/A")
	})

	t.Run("no odds at all", func(t *testing.T) {
		m := validatedMatch(t, matchdata.Match{TeamA: "Ajax", TeamB: "PSV"})

		h := Header(m)
		assert.Contains(t, h, "Could not be automatically extracted")
		assert.NotContains(t, h, "null")
	})

	t.Run("validation placeholders render", func(t *testing.T) {
		m := validatedMatch(t, matchdata.Match{TeamA: "Inter", TeamB: "Milan"})

		h := Header(m)
		assert.Contains(t, h, "**TIME:** TBD")
		assert.Contains(t, h, "**LEAGUE:** Unknown League")
		assert.Contains(t, h, "**STATUS:** Scheduled")
	})
}

func TestFallbackBody(t *testing.T) {
	m := matchdata.Match{TeamA: "Arsenal", TeamB: "Chelsea"}
	today := time.Now().Format("1/2/2006")

	t.Run("football", func(t *testing.T) {
		body := FallbackBody(m, "football")
		assert.Contains(t, body, "FOOTBALL ANALYSIS PROMPT REQUEST")
		assert.Contains(t, body, today)
	})

	t.Run("american football shares the football template", func(t *testing.T) {
		assert.Equal(t, FallbackBody(m, "football"), FallbackBody(m, "american-football"))
	})

	t.Run("tennis", func(t *testing.T) {
		body := FallbackBody(m, "tennis")
		assert.Contains(t, body, "TENNIS ANALYSIS PROMPT REQUEST")
		assert.Contains(t, body, "ATP/WTA")
	})

	t.Run("basketball", func(t *testing.T) {
		assert.Contains(t, FallbackBody(m, "basketball"), "NBA")
	})

	t.Run("unknown sport falls through to the generic template", func(t *testing.T) {
		body := FallbackBody(m, "handball")
		assert.Contains(t, body, "HANDBALL ANALYSIS PROMPT REQUEST")
		assert.Contains(t, body, "Arsenal vs Chelsea")
		assert.Contains(t, body, today)
	})
}

func TestGenerateAllOffline(t *testing.T) {
	ctx := context.Background()
	matches, err := matchdata.Validate([]matchdata.Match{
		{TeamA: "Arsenal", TeamB: "Chelsea"},
		{TeamA: "Inter", TeamB: "Milan"},
	})
	require.NoError(t, err)

	gen := New(Config{})

	type step struct {
		current, total int
		label          string
	}
	var steps []step
	var sunk []prompt.Prompt

	out, err := gen.GenerateAll(ctx, matches, "football",
		func(current, total int, label string) {
			steps = append(steps, step{current, total, label})
		},
		func(p prompt.Prompt) error {
			sunk = append(sunk, p)
			return nil
		})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, []step{
		{1, 2, "Arsenal vs Chelsea"},
		{2, 2, "Inter vs Milan"},
	}, steps)

	// The sink saw every prompt, in order, as it was produced.
	require.Len(t, sunk, 2)
	assert.Equal(t, out[0].ID, sunk[0].ID)
	assert.Equal(t, out[1].ID, sunk[1].ID)

	p := out[0]
	assert.Equal(t, "Arsenal vs Chelsea - football Analysis", p.Title)
	assert.Equal(t, prompt.TypeSpecific, p.Type)
	assert.True(t, p.HasTag(prompt.TagAIGenerated))
	assert.True(t, p.HasTag("Arsenal"))
	assert.Contains(t, p.Content, "MATCH DATA EXTRACTED FROM IMAGE")
	assert.Contains(t, p.Content, "\n---\n\n")
	assert.Contains(t, p.Content, "FOOTBALL ANALYSIS PROMPT REQUEST")
}

func TestGenerateAllRemote(t *testing.T) {
	ctx := context.Background()
	matches, err := matchdata.Validate([]matchdata.Match{{TeamA: "Arsenal", TeamB: "Chelsea"}})
	require.NoError(t, err)

	t.Run("remote body used on success", func(t *testing.T) {
		var req struct {
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []struct {
				Content []struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			fmt.Fprint(w, `{"choices": [{"message": {"content": "Remote analysis prompt body."}}]}`)
		}))
		defer server.Close()

		gen := New(Config{Client: extractor.NewClient(extractor.ClientConfig{APIKey: "sk-test", BaseURL: server.URL})})
		out, err := gen.GenerateAll(ctx, matches, "football", nil, nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.True(t, strings.HasSuffix(out[0].Content, "Remote analysis prompt body."))

		assert.InDelta(t, 0.2, req.Temperature, 1e-9)
		assert.Zero(t, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].Content, 1)
		assert.Contains(t, req.Messages[0].Content[0].Text, "Arsenal vs Chelsea")
	})

	t.Run("remote failure falls back, batch completes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		gen := New(Config{Client: extractor.NewClient(extractor.ClientConfig{APIKey: "sk-test", BaseURL: server.URL})})
		out, err := gen.GenerateAll(ctx, matches, "football", nil, nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Contains(t, out[0].Content, "FOOTBALL ANALYSIS PROMPT REQUEST")
	})
}

func TestGenerateAllSinkError(t *testing.T) {
	matches, err := matchdata.Validate([]matchdata.Match{
		{TeamA: "Arsenal", TeamB: "Chelsea"},
		{TeamA: "Inter", TeamB: "Milan"},
	})
	require.NoError(t, err)

	calls := 0
	out, err := New(Config{}).GenerateAll(context.Background(), matches, "football", nil,
		func(prompt.Prompt) error {
			calls++
			if calls == 2 {
				return errors.New("disk full")
			}
			return nil
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inter vs Milan")

	// The first prompt made it through before the failure.
	require.Len(t, out, 1)
	assert.Equal(t, "Arsenal vs Chelsea - football Analysis", out[0].Title)
}

func TestGenerateAllDelay(t *testing.T) {
	matches, err := matchdata.Validate([]matchdata.Match{
		{TeamA: "Arsenal", TeamB: "Chelsea"},
		{TeamA: "Inter", TeamB: "Milan"},
	})
	require.NoError(t, err)

	gen := New(Config{Delay: 30 * time.Millisecond})
	start := time.Now()
	_, err = gen.GenerateAll(context.Background(), matches, "football", nil, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestGenerateAllCancelDuringDelay(t *testing.T) {
	matches, err := matchdata.Validate([]matchdata.Match{
		{TeamA: "Arsenal", TeamB: "Chelsea"},
		{TeamA: "Inter", TeamB: "Milan"},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := New(Config{Delay: time.Hour}).GenerateAll(ctx, matches, "football", nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, out, 1)
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 180, G: 180, B: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// Full pipeline walk: two screenshots through extraction, validation and
// offline generation. The first response is prose the cascade must salvage,
// the second is well-formed JSON with odds that must survive into the prompt.
func TestScreenshotsToPrompts(t *testing.T) {
	ctx := context.Background()

	completions := []string{
		"I can see one fixture: Arsenal vs Chelsea tonight.",
		`[{"teamA": "Real Madrid", "teamB": "Barcelona", "odds": {"main1X2": {"home": "1.80", "draw": "3.50", "away": "4.20"}}}]`,
	}
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Less(t, call, len(completions))
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": completions[call]}},
			},
		}
		call++
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	ext := extractor.New(extractor.Config{APIKey: "sk-" + strings.Repeat("a", 40), BaseURL: server.URL})
	raw, err := ext.ExtractFromImages(ctx, [][]byte{testPNG(t, 60, 40), testPNG(t, 60, 40)}, "football")
	require.NoError(t, err)
	require.Len(t, raw, 2)

	matches, err := matchdata.Validate(raw)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	var sunk []prompt.Prompt
	out, err := New(Config{}).GenerateAll(ctx, matches, "football", nil, func(p prompt.Prompt) error {
		sunk = append(sunk, p)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, sunk, 2)

	assert.Equal(t, "Arsenal vs Chelsea - football Analysis", out[0].Title)
	assert.Contains(t, out[1].Title, "Real Madrid vs Barcelona")
	assert.Contains(t, out[1].Content, "1.80")
	for _, p := range out {
		assert.True(t, p.HasTag(prompt.TagAIGenerated))
	}
}
