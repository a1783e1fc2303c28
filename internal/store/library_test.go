package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/prompt"
	"github.com/promptdeck/promptdeck/internal/seed"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := OpenLibrary(context.Background(), newTestStore(t))
	require.NoError(t, err)
	return lib
}

func TestOpenLibrarySeedsOnFirstOpen(t *testing.T) {
	lib := newTestLibrary(t)
	assert.Len(t, lib.Manual(), seed.Count())
	assert.Empty(t, lib.AI())
}

func TestLibraryCRUD(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)

	p := prompt.New("My Scanner", "content", "tennis", prompt.TypeGeneral, []string{"form"})
	require.NoError(t, lib.Create(ctx, p, false))

	t.Run("duplicate id rejected", func(t *testing.T) {
		assert.Error(t, lib.Create(ctx, p, true))
	})

	t.Run("get", func(t *testing.T) {
		got, ok := lib.Get(p.ID)
		require.True(t, ok)
		assert.Equal(t, "My Scanner", got.Title)
	})

	t.Run("update keeps id and createdAt", func(t *testing.T) {
		edited := p
		edited.Title = "Renamed"
		edited.CreatedAt = "1999-01-01T00:00:00Z" // must be ignored
		require.NoError(t, lib.Update(ctx, edited))

		got, ok := lib.Get(p.ID)
		require.True(t, ok)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, p.CreatedAt, got.CreatedAt)
		assert.GreaterOrEqual(t, got.UpdatedAt, p.UpdatedAt)
	})

	t.Run("toggle favorite", func(t *testing.T) {
		require.NoError(t, lib.ToggleFavorite(ctx, p.ID))
		got, _ := lib.Get(p.ID)
		assert.True(t, got.IsFavorite)

		require.NoError(t, lib.ToggleFavorite(ctx, p.ID))
		got, _ = lib.Get(p.ID)
		assert.False(t, got.IsFavorite)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, lib.Delete(ctx, p.ID))
		_, ok := lib.Get(p.ID)
		assert.False(t, ok)
		assert.ErrorIs(t, lib.Delete(ctx, p.ID), ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, lib.ToggleFavorite(ctx, "nope"), ErrNotFound)
		assert.ErrorIs(t, lib.Update(ctx, prompt.Prompt{ID: "nope"}), ErrNotFound)
	})
}

func TestLibraryPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	lib, err := OpenLibrary(ctx, s)
	require.NoError(t, err)
	p := prompt.New("Survives", "content", "football", prompt.TypeGeneral, nil)
	require.NoError(t, lib.Create(ctx, p, true))

	again, err := OpenLibrary(ctx, s)
	require.NoError(t, err)
	got, ok := again.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Survives", got.Title)
	assert.Len(t, again.AI(), 1)
}

func TestMergeImported(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)

	aiPrompt := prompt.New("Generated", "content", "football", prompt.TypeSpecific,
		[]string{prompt.TagAIGenerated, "Match Analysis"})
	manualPrompt := prompt.New("Curated", "content", "tennis", prompt.TypeGeneral, []string{"form"})

	n, err := lib.MergeImported(ctx, []prompt.Prompt{aiPrompt, manualPrompt})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, lib.AI(), 1)
	assert.Len(t, lib.Manual(), seed.Count()+1)

	t.Run("idempotent re-import", func(t *testing.T) {
		n, err := lib.MergeImported(ctx, []prompt.Prompt{aiPrompt, manualPrompt})
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Len(t, lib.AI(), 1)
		assert.Len(t, lib.Manual(), seed.Count()+1)
	})
}

func TestMergeImportedValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("required fields", func(t *testing.T) {
		lib := newTestLibrary(t)
		before := len(lib.Manual())

		for _, records := range [][]prompt.Prompt{
			{{ID: "only-an-id"}},
			{{ID: "x", Title: "t", Content: "c"}},              // no sport
			{{Title: "t", Content: "c", Sport: "football"}},    // no id
			{{ID: "x", Title: "t", Sport: "football"}},         // no content
			{{ID: "ok", Title: "t", Content: "c", Sport: "football"}, {ID: "bad"}},
		} {
			n, err := lib.MergeImported(ctx, records)
			require.Error(t, err)
			assert.Zero(t, n)
		}

		// A rejected batch merges nothing, including its valid records.
		assert.Len(t, lib.Manual(), before)
		_, ok := lib.Get("ok")
		assert.False(t, ok)
	})

	t.Run("defaults filled on minimal record", func(t *testing.T) {
		lib := newTestLibrary(t)

		n, err := lib.MergeImported(ctx, []prompt.Prompt{
			{ID: "bare", Title: "Bare", Content: "c", Sport: "cs2"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, ok := lib.Get("bare")
		require.True(t, ok)
		assert.Equal(t, catalog.CategoryEsports, got.Category)
		assert.Equal(t, prompt.TypeGeneral, got.Type)
		assert.NotEmpty(t, got.CreatedAt)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		assert.Zero(t, got.UsageCount)
		assert.Zero(t, got.TotalBets)
	})

	t.Run("populated fields kept", func(t *testing.T) {
		lib := newTestLibrary(t)

		n, err := lib.MergeImported(ctx, []prompt.Prompt{{
			ID:        "full",
			Title:     "Full",
			Content:   "c",
			Sport:     "tennis",
			Category:  catalog.CategoryTraditional,
			Type:      prompt.TypeSpecific,
			CreatedAt: "2024-03-01T00:00:00Z",
			UpdatedAt: "2024-03-02T00:00:00Z",
		}})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, _ := lib.Get("full")
		assert.Equal(t, prompt.TypeSpecific, got.Type)
		assert.Equal(t, "2024-03-01T00:00:00Z", got.CreatedAt)
		assert.Equal(t, "2024-03-02T00:00:00Z", got.UpdatedAt)
	})
}

func TestResetToDefault(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)

	require.NoError(t, lib.Create(ctx, prompt.New("Extra", "c", "golf", prompt.TypeGeneral, nil), false))
	require.NoError(t, lib.Create(ctx, prompt.New("AI", "c", "golf", prompt.TypeGeneral, nil), true))

	require.NoError(t, lib.ResetToDefault(ctx))
	assert.Len(t, lib.Manual(), seed.Count())
	assert.Empty(t, lib.AI())
}

func TestFilter(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "1", Category: catalog.CategoryTraditional, Sport: "football", Type: prompt.TypeGeneral},
		{ID: "2", Category: catalog.CategoryTraditional, Sport: "tennis", Type: prompt.TypeSpecific, IsFavorite: true},
		{ID: "3", Category: catalog.CategoryEsports, Sport: "cs2", Type: prompt.TypeGeneral},
	}

	assert.Len(t, Filter(prompts, FilterOptions{}), 3)
	assert.Len(t, Filter(prompts, FilterOptions{Category: catalog.CategoryTraditional}), 2)
	assert.Len(t, Filter(prompts, FilterOptions{Sport: "cs2"}), 1)
	assert.Len(t, Filter(prompts, FilterOptions{Type: prompt.TypeSpecific}), 1)
	assert.Len(t, Filter(prompts, FilterOptions{FavoritesOnly: true}), 1)
	assert.Empty(t, Filter(prompts, FilterOptions{Sport: "tennis", Type: prompt.TypeGeneral}))
}

func TestSearch(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "1", Title: "Football EV Scanner", Sport: "football", Tags: []string{"weather"}},
		{ID: "2", Title: "Tennis Analysis", Sport: "tennis", Tags: []string{"surface", "h2h"}},
	}

	assert.Len(t, Search(prompts, ""), 2)
	assert.Len(t, Search(prompts, "SCANNER"), 1)
	assert.Len(t, Search(prompts, "tennis"), 1)
	assert.Len(t, Search(prompts, "h2h"), 1)
	assert.Empty(t, Search(prompts, "cricket"))
}
