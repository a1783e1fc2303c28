package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/store"
)

var showCopy bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a prompt's content",
	Long: `Print a prompt. With --copy the full content is written bare to
stdout for piping into a clipboard tool, and the use is recorded in the
analytics store.

Examples:
  promptdeck show 3f2a...
  promptdeck show 3f2a... --copy | xclip -selection clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "Bare content output, and count this as a use")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	p, ok := lib.Get(args[0])
	if !ok {
		return fmt.Errorf("prompt %s not found", args[0])
	}

	if showCopy {
		analytics, err := store.OpenAnalytics(ctx, s)
		if err != nil {
			return fmt.Errorf("load analytics: %w", err)
		}
		if err := analytics.TrackUsage(ctx, p.ID); err != nil {
			return fmt.Errorf("track usage: %w", err)
		}
		fmt.Print(p.Content)
		if !strings.HasSuffix(p.Content, "\n") {
			fmt.Println()
		}
		return nil
	}

	fmt.Printf("Title:    %s\n", p.Title)
	fmt.Printf("ID:       %s\n", p.ID)
	fmt.Printf("Sport:    %s (%s)\n", p.Sport, p.Category)
	fmt.Printf("Type:     %s\n", p.Type)
	if len(p.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Printf("Created:  %s\n", p.CreatedAt)
	fmt.Printf("Updated:  %s\n", p.UpdatedAt)
	fmt.Println()
	fmt.Println(p.Content)
	return nil
}
