package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/prompt"
)

var exportOut string

// exportDocument is the interchange format shared by export and import.
type exportDocument struct {
	ExportedAt string          `json:"exportedAt"`
	Prompts    []prompt.Prompt `json:"prompts"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full prompt library as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, s, lib, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	doc := exportDocument{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Prompts:    lib.All(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	data = append(data, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported %d prompt(s) to %s\n", len(doc.Prompts), exportOut)
	return nil
}
