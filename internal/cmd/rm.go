package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a contact by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NopLogger()
	client, err := newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	id := args[0]
	if err := client.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete contact %s: %w", id, err)
	}

	fmt.Printf("Deleted contact %s\n", id)
	return nil
}
