package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var (
	addTitle       string
	addContent     string
	addContentFile string
	addSport       string
	addType        string
	addTags        []string
	addTeamA       string
	addTeamB       string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a prompt to the manual collection",
	Long: `Add a prompt. For specific-type prompts the bracketed participant
placeholders ([TEAM A], [Team B], [PLAYER A], ...) in the content are resolved
against --team-a/--team-b at save time.

Examples:
  promptdeck add --title "Derby scanner" --sport football --type general --content-file derby.md
  promptdeck add --title "El Clasico" --sport football --type specific \
    --team-a "Real Madrid" --team-b "Barcelona" --content-file clasico.md`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Prompt title (required)")
	addCmd.Flags().StringVar(&addContent, "content", "", "Prompt content inline")
	addCmd.Flags().StringVar(&addContentFile, "content-file", "", "Read prompt content from a file")
	addCmd.Flags().StringVar(&addSport, "sport", "", "Sport id (required)")
	addCmd.Flags().StringVar(&addType, "type", string(prompt.TypeGeneral), "Prompt type: general or specific")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Comma-separated tags")
	addCmd.Flags().StringVar(&addTeamA, "team-a", "", "First participant (specific type)")
	addCmd.Flags().StringVar(&addTeamB, "team-b", "", "Second participant (specific type)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if addTitle == "" {
		return fmt.Errorf("must specify --title")
	}
	if addSport == "" {
		return fmt.Errorf("must specify --sport")
	}
	if _, ok := catalog.Lookup(addSport); !ok {
		return fmt.Errorf("unknown sport %q", addSport)
	}

	typ := prompt.Type(addType)
	if typ != prompt.TypeGeneral && typ != prompt.TypeSpecific {
		return fmt.Errorf("invalid --type %q: must be general or specific", addType)
	}

	content, err := resolveContent(addContent, addContentFile)
	if err != nil {
		return err
	}
	if typ == prompt.TypeSpecific {
		if addTeamA == "" || addTeamB == "" {
			return fmt.Errorf("specific prompts require --team-a and --team-b")
		}
		content = prompt.ResolveParticipants(content, addTeamA, addTeamB)
	}

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	p := prompt.New(addTitle, content, addSport, typ, addTags)
	if err := lib.Create(ctx, p, false); err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}

	fmt.Printf("Created prompt %s: %s\n", p.ID, p.Title)
	return nil
}

func resolveContent(inline, file string) (string, error) {
	switch {
	case inline != "" && file != "":
		return "", fmt.Errorf("use either --content or --content-file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read content file: %w", err)
		}
		return string(data), nil
	case strings.TrimSpace(inline) != "":
		return inline, nil
	default:
		return "", fmt.Errorf("prompt content is required (--content or --content-file)")
	}
}
