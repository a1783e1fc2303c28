package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/prompt"
	"github.com/promptdeck/promptdeck/internal/seed"
)

// ErrNotFound is returned when no prompt with the requested id exists in
// either collection.
var ErrNotFound = errors.New("prompt not found")

// Library manages the two persisted prompt collections: the manually curated
// set and the AI-generated set. Records in both participate identically in
// search, filter and merge; only the collection they live in differs.
type Library struct {
	store  *Store
	manual []prompt.Prompt
	ai     []prompt.Prompt
}

// OpenLibrary loads both collections, seeding the manual collection with the
// built-in prompt set on first open.
func OpenLibrary(ctx context.Context, s *Store) (*Library, error) {
	lib := &Library{store: s}

	found, err := s.Get(ctx, KeyManualPrompts, &lib.manual)
	if err != nil {
		return nil, err
	}
	if !found {
		lib.manual = seed.Prompts()
		if err := s.Set(ctx, KeyManualPrompts, lib.manual); err != nil {
			return nil, err
		}
	}

	if _, err := s.Get(ctx, KeyAIPrompts, &lib.ai); err != nil {
		return nil, err
	}
	return lib, nil
}

// Manual returns the manually curated collection.
func (l *Library) Manual() []prompt.Prompt { return l.manual }

// AI returns the AI-generated collection.
func (l *Library) AI() []prompt.Prompt { return l.ai }

// All returns the union of both collections, manual first.
func (l *Library) All() []prompt.Prompt {
	out := make([]prompt.Prompt, 0, len(l.manual)+len(l.ai))
	out = append(out, l.manual...)
	out = append(out, l.ai...)
	return out
}

// Get finds a prompt by id in either collection.
func (l *Library) Get(id string) (prompt.Prompt, bool) {
	for _, p := range l.All() {
		if p.ID == id {
			return p, true
		}
	}
	return prompt.Prompt{}, false
}

// Create appends a new prompt to the chosen collection. The id must not
// already exist anywhere in the library.
func (l *Library) Create(ctx context.Context, p prompt.Prompt, aiCollection bool) error {
	if _, exists := l.Get(p.ID); exists {
		return fmt.Errorf("prompt id %q already exists", p.ID)
	}
	if aiCollection {
		l.ai = append(l.ai, p)
		return l.store.Set(ctx, KeyAIPrompts, l.ai)
	}
	l.manual = append(l.manual, p)
	return l.store.Set(ctx, KeyManualPrompts, l.manual)
}

// Update replaces the mutable fields of an existing prompt. The id,
// createdAt and collection membership are immutable; updatedAt is refreshed.
func (l *Library) Update(ctx context.Context, updated prompt.Prompt) error {
	return l.mutate(ctx, updated.ID, func(p *prompt.Prompt) {
		updated.ID = p.ID
		updated.CreatedAt = p.CreatedAt
		*p = updated
		p.Touch()
	})
}

// Delete removes a prompt from whichever collection holds it.
func (l *Library) Delete(ctx context.Context, id string) error {
	for i, p := range l.manual {
		if p.ID == id {
			l.manual = append(l.manual[:i], l.manual[i+1:]...)
			return l.store.Set(ctx, KeyManualPrompts, l.manual)
		}
	}
	for i, p := range l.ai {
		if p.ID == id {
			l.ai = append(l.ai[:i], l.ai[i+1:]...)
			return l.store.Set(ctx, KeyAIPrompts, l.ai)
		}
	}
	return ErrNotFound
}

// ToggleFavorite flips the favorite flag on a prompt.
func (l *Library) ToggleFavorite(ctx context.Context, id string) error {
	return l.mutate(ctx, id, func(p *prompt.Prompt) {
		p.IsFavorite = !p.IsFavorite
		p.Touch()
	})
}

func (l *Library) mutate(ctx context.Context, id string, fn func(*prompt.Prompt)) error {
	for i := range l.manual {
		if l.manual[i].ID == id {
			fn(&l.manual[i])
			return l.store.Set(ctx, KeyManualPrompts, l.manual)
		}
	}
	for i := range l.ai {
		if l.ai[i].ID == id {
			fn(&l.ai[i])
			return l.store.Set(ctx, KeyAIPrompts, l.ai)
		}
	}
	return ErrNotFound
}

// MergeImported adds externally supplied records, routing prompts tagged
// "AI Generated" into the AI collection and the rest into the manual one.
// Records whose id already exists anywhere in the library are skipped, so
// re-importing the same export is a no-op. Returns the number imported.
//
// Records come from an untrusted file: every one must carry id, title,
// content and sport, and absent timestamp/display fields are filled with
// defaults. A malformed record fails the whole import before anything is
// merged.
func (l *Library) MergeImported(ctx context.Context, records []prompt.Prompt) (int, error) {
	records, err := normalizeImported(records)
	if err != nil {
		return 0, err
	}

	existing := make(map[string]struct{}, len(l.manual)+len(l.ai))
	for _, p := range l.All() {
		existing[p.ID] = struct{}{}
	}

	var imported int
	var manualDirty, aiDirty bool
	for _, p := range records {
		if _, dup := existing[p.ID]; dup {
			continue
		}
		existing[p.ID] = struct{}{}
		if p.HasTag(prompt.TagAIGenerated) {
			l.ai = append(l.ai, p)
			aiDirty = true
		} else {
			l.manual = append(l.manual, p)
			manualDirty = true
		}
		imported++
	}

	if manualDirty {
		if err := l.store.Set(ctx, KeyManualPrompts, l.manual); err != nil {
			return imported, err
		}
	}
	if aiDirty {
		if err := l.store.Set(ctx, KeyAIPrompts, l.ai); err != nil {
			return imported, err
		}
	}
	return imported, nil
}

// normalizeImported enforces the import contract. The analytics counters are
// already zero-valued on an absent field; only the timestamps and the fields
// derivable from the sport need filling.
func normalizeImported(records []prompt.Prompt) ([]prompt.Prompt, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	out := make([]prompt.Prompt, len(records))
	for i, p := range records {
		if p.ID == "" || p.Title == "" || p.Content == "" || p.Sport == "" {
			return nil, fmt.Errorf("import record %d (id %q): id, title, content and sport are required", i+1, p.ID)
		}
		if p.Category == "" {
			p.Category = catalog.CategoryFor(p.Sport)
		}
		if p.Type == "" {
			p.Type = prompt.TypeGeneral
		}
		if p.CreatedAt == "" {
			p.CreatedAt = now
		}
		if p.UpdatedAt == "" {
			p.UpdatedAt = p.CreatedAt
		}
		out[i] = p
	}
	return out, nil
}

// ResetToDefault replaces the manual collection with the built-in seed set
// and clears the AI collection. Destructive; callers confirm first.
func (l *Library) ResetToDefault(ctx context.Context) error {
	l.manual = seed.Prompts()
	l.ai = nil
	if err := l.store.Set(ctx, KeyManualPrompts, l.manual); err != nil {
		return err
	}
	return l.store.Set(ctx, KeyAIPrompts, []prompt.Prompt{})
}

// FilterOptions narrows a prompt list. Zero values mean "no constraint".
type FilterOptions struct {
	Category      catalog.Category
	Sport         string
	Type          prompt.Type
	FavoritesOnly bool
}

// Filter returns the prompts matching every set constraint. Pure.
func Filter(prompts []prompt.Prompt, opts FilterOptions) []prompt.Prompt {
	out := make([]prompt.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Sport != "" && p.Sport != opts.Sport {
			continue
		}
		if opts.Type != "" && p.Type != opts.Type {
			continue
		}
		if opts.FavoritesOnly && !p.IsFavorite {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search returns the prompts whose title, sport or any tag contains the
// term, case-insensitively. An empty term matches everything. Pure.
func Search(prompts []prompt.Prompt, term string) []prompt.Prompt {
	if term == "" {
		return prompts
	}
	term = strings.ToLower(term)

	out := make([]prompt.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Sport), term) ||
			anyTagContains(p.Tags, term) {
			out = append(out, p)
		}
	}
	return out
}

func anyTagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}
