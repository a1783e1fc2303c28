package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/store"
)

var (
	outcomeWon  bool
	outcomeLost bool
	outcomeBet  float64
	outcomeWin  float64
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <id>",
	Short: "Record a settled bet against a prompt",
	Long: `Record the outcome of a bet placed using a prompt's analysis.

Examples:
  promptdeck outcome 3f2a... --won --bet 100 --win 180
  promptdeck outcome 3f2a... --lost --bet 50`,
	Args: cobra.ExactArgs(1),
	RunE: runOutcome,
}

func init() {
	outcomeCmd.Flags().BoolVar(&outcomeWon, "won", false, "The bet won")
	outcomeCmd.Flags().BoolVar(&outcomeLost, "lost", false, "The bet lost")
	outcomeCmd.Flags().Float64Var(&outcomeBet, "bet", 0, "Stake amount")
	outcomeCmd.Flags().Float64Var(&outcomeWin, "win", 0, "Total return on a win")
	rootCmd.AddCommand(outcomeCmd)
}

func runOutcome(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if outcomeWon == outcomeLost {
		return fmt.Errorf("specify exactly one of --won or --lost")
	}
	if outcomeBet <= 0 {
		return fmt.Errorf("--bet must be positive")
	}
	if outcomeWon && outcomeWin <= 0 {
		return fmt.Errorf("--win is required with --won")
	}

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	p, ok := lib.Get(args[0])
	if !ok {
		return fmt.Errorf("prompt %s not found", args[0])
	}

	analytics, err := store.OpenAnalytics(ctx, s)
	if err != nil {
		return fmt.Errorf("load analytics: %w", err)
	}
	if err := analytics.RecordOutcome(ctx, p.ID, outcomeWon, outcomeBet, outcomeWin); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}

	rec, _ := analytics.Get(p.ID)
	fmt.Printf("Recorded outcome for %q\n", p.Title)
	fmt.Printf("  Bets: %d  Won: %d  Success rate: %.1f%%  ROI: %+.2f\n",
		rec.TotalBets, rec.WinningBets, rec.SuccessRate, rec.ROI)
	return nil
}
