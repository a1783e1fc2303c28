package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteYes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Delete %q", p.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := lib.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	fmt.Printf("Deleted prompt %s\n", p.ID)
	return nil
}
