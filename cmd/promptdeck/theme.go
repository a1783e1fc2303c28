package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the display theme preference",
	Long: `Show the persisted theme preference, or set it to dark or light.
The preference travels with the database, so frontends sharing it render
consistently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	s, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	if len(args) == 1 {
		var dark bool
		switch args[0] {
		case "dark":
			dark = true
		case "light":
			dark = false
		default:
			return fmt.Errorf("invalid theme %q: must be dark or light", args[0])
		}
		if err := s.SetDarkMode(ctx, dark); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	}

	dark, err := s.DarkMode(ctx)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	if dark {
		fmt.Println("dark")
	} else {
		fmt.Println("light")
	}
	return nil
}
