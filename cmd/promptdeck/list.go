package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/pager"
	"github.com/promptdeck/promptdeck/internal/prompt"
	"github.com/promptdeck/promptdeck/internal/store"
)

var (
	listAI        bool
	listCategory  string
	listSport     string
	listType      string
	listFavorites bool
	listSearch    string
	listAll       bool
	listPageSize  int
	listPages     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts in the library",
	Long: `List prompts, optionally filtered and searched.

Examples:
  promptdeck list --sport football --favorites
  promptdeck list --ai --search "Real Madrid"
  promptdeck list --all`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAI, "ai", false, "Only the AI-generated collection")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (traditional, racing, esports)")
	listCmd.Flags().StringVar(&listSport, "sport", "", "Filter by sport")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by type (general, specific)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Only favorites")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search term over title, sport and tags")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show everything, no paging")
	listCmd.Flags().IntVar(&listPageSize, "page-size", pager.DefaultInitial, "Entries in the first page")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to reveal")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	analytics, err := store.OpenAnalytics(ctx, s)
	if err != nil {
		return fmt.Errorf("load analytics: %w", err)
	}

	prompts := lib.All()
	if listAI {
		prompts = lib.AI()
	}
	prompts = store.Filter(prompts, store.FilterOptions{
		Category:      catalog.Category(listCategory),
		Sport:         listSport,
		Type:          prompt.Type(listType),
		FavoritesOnly: listFavorites,
	})
	prompts = store.Search(prompts, listSearch)

	if len(prompts) == 0 {
		fmt.Println("No prompts match.")
		return nil
	}

	shown := len(prompts)
	if !listAll {
		p := pager.New(len(prompts), listPageSize, pager.DefaultIncrement, 0)
		for i := 1; i < listPages; i++ {
			p.LoadMore()
		}
		shown = p.Visible()
	}

	for _, p := range prompts[:shown] {
		printPromptLine(p, analytics)
	}
	if shown < len(prompts) {
		fmt.Printf("... and %d more (rerun with --pages %d or --all)\n", len(prompts)-shown, listPages+1)
	}
	return nil
}

func printPromptLine(p prompt.Prompt, analytics *store.Analytics) {
	star := " "
	if p.IsFavorite {
		star = "★"
	}
	usage := ""
	if rec, ok := analytics.Get(p.ID); ok {
		usage = fmt.Sprintf("  (used %d", rec.UsageCount)
		if rec.TotalBets > 0 {
			usage += fmt.Sprintf(", %d/%d won, roi %+.2f", rec.WinningBets, rec.TotalBets, rec.ROI)
		}
		usage += ")"
	}
	fmt.Printf("%s %-36s  %-10s %-8s  %s%s\n", star, p.ID, p.Sport, p.Type, p.Title, usage)
}
