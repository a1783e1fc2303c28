package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/extractor"
	"github.com/promptdeck/promptdeck/internal/generator"
	"github.com/promptdeck/promptdeck/internal/matchdata"
	"github.com/promptdeck/promptdeck/internal/prompt"
	"github.com/promptdeck/promptdeck/internal/store"
)

var (
	generateSport   string
	generateImages  []string
	generateOffline bool
	generateSaveKey bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate analysis prompts from betting screenshots",
	Long: `Extract match data from betting screenshots and generate one analysis
prompt per match into the AI collection.

Examples:
  promptdeck generate --sport football --image today.png
  promptdeck generate --sport tennis --image a.png --image b.png --offline`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSport, "sport", "", "Sport shown in the screenshots (required)")
	generateCmd.Flags().StringArrayVar(&generateImages, "image", nil, "Screenshot file, repeatable (required)")
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "Skip the remote prompt escalation, use local templates")
	generateCmd.Flags().BoolVar(&generateSaveKey, "save-key", false, "Cache the API key in the local database")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if generateSport == "" {
		return fmt.Errorf("must specify --sport")
	}
	if _, ok := catalog.Lookup(generateSport); !ok {
		return fmt.Errorf("unknown sport %q, see the sport catalog", generateSport)
	}
	if len(generateImages) == 0 {
		return fmt.Errorf("must specify at least one --image")
	}

	cfg, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	apiKey, err := resolveAPIKey(ctx, s, cfg.OpenAIAPIKey)
	if err != nil {
		return err
	}
	if generateSaveKey {
		if err := s.Set(ctx, store.KeyAPIKey, apiKey); err != nil {
			return fmt.Errorf("save API key: %w", err)
		}
	}

	images := make([][]byte, 0, len(generateImages))
	for _, path := range generateImages {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		images = append(images, data)
	}

	slog.Info("starting prompt generation",
		"sport", generateSport,
		"images", len(images),
		"offline", generateOffline,
	)

	ext := extractor.New(extractor.Config{
		APIKey:            apiKey,
		Model:             cfg.OpenAIModel,
		BaseURL:           cfg.OpenAIBaseURL,
		MaxImageDimension: cfg.MaxImageDimension,
	})

	raw, err := ext.ExtractFromImages(ctx, images, generateSport)
	if err != nil {
		return err
	}

	matches, err := matchdata.Validate(raw)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d match(es) across %d image(s)\n", len(matches), len(images))

	genCfg := generator.Config{Delay: cfg.GenerationDelay}
	if !generateOffline {
		genCfg.Client = extractor.NewClient(extractor.ClientConfig{
			APIKey:  apiKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
	}

	created, err := generator.New(genCfg).GenerateAll(ctx, matches, generateSport,
		func(current, total int, label string) {
			fmt.Printf("Generating prompt %d/%d: %s\n", current, total, label)
		},
		func(p prompt.Prompt) error {
			return lib.Create(ctx, p, true)
		})
	if err != nil {
		return fmt.Errorf("generate prompts: %w", err)
	}

	fmt.Printf("Created %d prompt(s) in the AI collection\n", len(created))
	for _, p := range created {
		fmt.Printf("  %s  %s\n", p.ID, p.Title)
	}
	return nil
}

// resolveAPIKey prefers the environment, then falls back to a key previously
// cached with --save-key.
func resolveAPIKey(ctx context.Context, s *store.Store, envKey string) (string, error) {
	key := envKey
	if key == "" {
		if _, err := s.Get(ctx, store.KeyAPIKey, &key); err != nil {
			return "", err
		}
	}
	if key == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is required (set it in the environment or cache it with --save-key)")
	}
	if err := extractor.ValidateAPIKey(key); err != nil {
		return "", err
	}
	return key, nil
}
