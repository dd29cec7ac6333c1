package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/contact"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	Long: `Add a contact to the collection. The phone number is reduced to
digits and must come out to exactly 10 of them. The new contact's id is
computed client-side from the current collection.`,
	RunE: runAdd,
}

var (
	addName  string
	addEmail string
	addPhone string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "full name")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number (10 digits after stripping separators)")
	_ = addCmd.MarkFlagRequired("phone")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleaned := contact.CleanPhone(addPhone)
	if err := contact.ValidatePhone(cleaned); err != nil {
		return err
	}

	logger := logging.NopLogger()
	client, err := newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	ctx := context.Background()

	// The store does not assign ids; derive one from a fresh fetch.
	existing, err := client.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	record := contact.Contact{
		ID:       contact.NextID(existing),
		FullName: addName,
		Email:    addEmail,
		Phone:    cleaned,
	}

	if err := client.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	fmt.Printf("Added contact %s\n", record.ID)
	return nil
}
