package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/contact"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all contacts",
	Long:  `Fetch the contact collection and print one line per contact.`,
	RunE:  runList,
}

var listSort string // "", "asc" or "desc"

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by name: asc or desc (default: sheet order)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	order := contact.OrderNatural
	switch listSort {
	case "":
	case "asc":
		order = contact.OrderAscending
	case "desc":
		order = contact.OrderDescending
	default:
		return fmt.Errorf("invalid --sort value %q: want asc or desc", listSort)
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

	for _, c := range contact.SortByName(contacts, order) {
		fmt.Printf("%s\t%s\t%s\t%s\n", c.ID, c.FullName, contact.FormatPhone(c.Phone), c.Email)
	}
	return nil
}
