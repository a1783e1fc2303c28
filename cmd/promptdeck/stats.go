package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [id]",
	Short: "Show library and usage statistics",
	Long: `Display statistics about the prompt library and recorded bet
outcomes. With an id, show the analytics for that single prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	analytics, err := store.OpenAnalytics(ctx, s)
	if err != nil {
		return fmt.Errorf("load analytics: %w", err)
	}

	if len(args) == 1 {
		return printPromptStats(lib, analytics, args[0])
	}

	byCategory := map[string]int{}
	favorites := 0
	for _, p := range lib.All() {
		byCategory[string(p.Category)]++
		if p.IsFavorite {
			favorites++
		}
	}

	fmt.Println("=== PromptDeck Statistics ===")
	fmt.Println()
	fmt.Printf("Database: %s\n", cfg.DatabasePath)
	fmt.Println()
	fmt.Println("Prompts:")
	fmt.Printf("  Manual: %d\n", len(lib.Manual()))
	fmt.Printf("  AI-generated: %d\n", len(lib.AI()))
	fmt.Printf("  Favorites: %d\n", favorites)
	if len(byCategory) > 0 {
		fmt.Println("  By category:")
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Printf("    %s: %d\n", c, byCategory[c])
		}
	}
	fmt.Println()

	fmt.Println("Usage:")
	used := 0
	for _, p := range lib.All() {
		rec, ok := analytics.Get(p.ID)
		if !ok {
			continue
		}
		used++
		line := fmt.Sprintf("  %s: used %d", p.Title, rec.UsageCount)
		if rec.TotalBets > 0 {
			line += fmt.Sprintf(", %d/%d won (%.1f%%), roi %+.2f",
				rec.WinningBets, rec.TotalBets, rec.SuccessRate, rec.ROI)
		}
		fmt.Println(line)
	}
	if used == 0 {
		fmt.Println("  No usage recorded yet.")
	}
	return nil
}

func printPromptStats(lib *store.Library, analytics *store.Analytics, id string) error {
	p, ok := lib.Get(id)
	if !ok {
		return fmt.Errorf("prompt %s not found", id)
	}

	fmt.Printf("%s\n", p.Title)
	rec, ok := analytics.Get(p.ID)
	if !ok {
		fmt.Println("  No usage recorded yet.")
		return nil
	}

	fmt.Printf("  Uses: %d\n", rec.UsageCount)
	if rec.LastUsed != "" {
		fmt.Printf("  Last used: %s\n", rec.LastUsed)
	}
	if rec.TotalBets > 0 {
		fmt.Printf("  Bets: %d  Won: %d  Success rate: %.1f%%  ROI: %+.2f\n",
			rec.TotalBets, rec.WinningBets, rec.SuccessRate, rec.ROI)
	}
	return nil
}
