package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the contact count",
	Long: `Fetch the collection and print its size. The created/modified/removed
counters shown in the interactive UI are session-scoped and have no meaning
outside of it, so this command reports the total only.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NopLogger()
	client, err := newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	contacts, err := client.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	fmt.Printf("Contacts: %d\n", len(contacts))
	return nil
}
