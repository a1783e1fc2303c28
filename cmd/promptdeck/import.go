package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/prompt"
)

var importIn string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Merge prompts from an export file",
	Long: `Merge prompts from a previous export. Records already present (by id)
are skipped; prompts tagged "AI Generated" land in the AI collection, the
rest in the manual one. Re-importing the same file is a no-op.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file (required)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if importIn == "" {
		return fmt.Errorf("must specify --in")
	}

	data, err := os.ReadFile(importIn)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	records, err := decodeImport(data)
	if err != nil {
		return err
	}

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	imported, err := lib.MergeImported(ctx, records)
	if err != nil {
		return fmt.Errorf("merge prompts: %w", err)
	}

	fmt.Printf("Imported %d prompt(s), skipped %d already present\n", imported, len(records)-imported)
	return nil
}

// decodeImport accepts both the export document shape and a bare prompt
// array, so hand-built files work too.
func decodeImport(data []byte) ([]prompt.Prompt, error) {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err == nil && len(doc.Prompts) > 0 {
		return doc.Prompts, nil
	}

	var records []prompt.Prompt
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	return records, nil
}
