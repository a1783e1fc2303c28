package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a prompt's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := lib.ToggleFavorite(ctx, args[0]); err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}

	p, _ := lib.Get(args[0])
	if p.IsFavorite {
		fmt.Printf("★ %s is now a favorite\n", p.Title)
	} else {
		fmt.Printf("%s is no longer a favorite\n", p.Title)
	}
	return nil
}
