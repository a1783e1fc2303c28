package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/seed"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in prompt library",
	Long: `Replace the manual collection with the built-in seed prompts and
clear the AI-generated collection. This discards every prompt you added or
generated.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if !resetYes && !confirm(os.Stdin, os.Stdout,
		fmt.Sprintf("Discard %d manual and %d AI prompt(s) and restore defaults",
			len(lib.Manual()), len(lib.AI()))) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := lib.ResetToDefault(ctx); err != nil {
		return fmt.Errorf("reset library: %w", err)
	}
	fmt.Printf("Library reset: %d built-in prompt(s), AI collection cleared\n", seed.Count())
	return nil
}
