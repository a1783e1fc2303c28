package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var (
	editTitle       string
	editContent     string
	editContentFile string
	editSport       string
	editType        string
	editTags        []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing prompt",
	Long: `Edit a prompt in place. Only the given flags change; the id and
creation time never do.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content inline")
	editCmd.Flags().StringVar(&editContentFile, "content-file", "", "Read new content from a file")
	editCmd.Flags().StringVar(&editSport, "sport", "", "New sport id")
	editCmd.Flags().StringVar(&editType, "type", "", "New type: general or specific")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "Replacement tags, comma-separated")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	if editTitle != "" {
		p.Title = editTitle
	}
	if editContent != "" || editContentFile != "" {
		content, err := resolveContent(editContent, editContentFile)
		if err != nil {
			return err
		}
		p.Content = content
	}
	if editSport != "" {
		if _, ok := catalog.Lookup(editSport); !ok {
			return fmt.Errorf("unknown sport %q", editSport)
		}
		p.Sport = editSport
		p.Category = catalog.CategoryFor(editSport)
	}
	if editType != "" {
		typ := prompt.Type(editType)
		if typ != prompt.TypeGeneral && typ != prompt.TypeSpecific {
			return fmt.Errorf("invalid --type %q: must be general or specific", editType)
		}
		p.Type = typ
	}
	if cmd.Flags().Changed("tags") {
		p.Tags = editTags
	}

	if err := lib.Update(ctx, p); err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}
	fmt.Printf("Updated prompt %s\n", p.ID)
	return nil
}
