package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "A sports betting analysis prompt manager",
	Long: `PromptDeck maintains a library of professional sports betting analysis
prompts and generates new ones from betting screenshots using a vision model.`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openLibrary performs the setup shared by every subcommand: load and
// validate config, open the database, load the prompt collections. The
// caller owns closing the returned store.
func openLibrary(ctx context.Context) (*config.Config, *store.Store, *store.Library, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("validate config: %w", err)
	}

	s, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	lib, err := store.OpenLibrary(ctx, s)
	if err != nil {
		s.Close()
		return nil, nil, nil, fmt.Errorf("load prompt library: %w", err)
	}
	return cfg, s, lib, nil
}

// confirm asks for interactive confirmation on destructive operations.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
