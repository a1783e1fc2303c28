// Package prompt defines the durable prompt record and its construction.
package prompt

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/promptdeck/promptdeck/internal/catalog"
)

// Type distinguishes sport-wide scanner prompts from prompts bound to two
// named participants.
type Type string

const (
	TypeGeneral  Type = "general"
	TypeSpecific Type = "specific"
)

// TagAIGenerated marks prompts produced by the generation pipeline. Import
// uses it to route records into the AI collection.
const TagAIGenerated = "AI Generated"

// Prompt is the durable unit of the library.
type Prompt struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	Sport    string           `json:"sport"`
	Category catalog.Category `json:"category"`
	Type     Type             `json:"type"`
	Tags     []string         `json:"tags"`

	IsFavorite bool `json:"isFavorite"`

	// Usage and outcome fields mirror the analytics store for display and
	// export compatibility; the analytics store is authoritative.
	UsageCount  int     `json:"usageCount"`
	LastUsed    string  `json:"lastUsed,omitempty"`
	SuccessRate float64 `json:"successRate"`
	TotalBets   int     `json:"totalBets"`
	WinningBets int     `json:"winningBets"`
	ROI         float64 `json:"roi"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// New builds a prompt record with a fresh id and timestamps. The category is
// derived from the sport.
func New(title, content, sport string, typ Type, tags []string) Prompt {
	now := time.Now().UTC().Format(time.RFC3339)
	return Prompt{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Sport:     sport,
		Category:  catalog.CategoryFor(sport),
		Type:      typ,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the updatedAt timestamp.
func (p *Prompt) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// HasTag reports whether the prompt carries the given tag, case-insensitively.
func (p Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ResolveParticipants substitutes the bracketed participant tokens in a
// specific-type template with the two entered names. The all-caps token forms
// take the uppercased name, the title-case forms take the name verbatim.
// Substitution happens once at save time; the resolved text becomes the
// stored content.
func ResolveParticipants(content, teamA, teamB string) string {
	if teamA == "" || teamB == "" {
		return content
	}
	r := strings.NewReplacer(
		"[TEAM A]", strings.ToUpper(teamA),
		"[Team A]", teamA,
		"[TEAM B]", strings.ToUpper(teamB),
		"[Team B]", teamB,
		"[PLAYER A]", teamA,
		"[Player A]", teamA,
		"[PLAYER B]", teamB,
		"[Player B]", teamB,
	)
	return r.Replace(content)
}
