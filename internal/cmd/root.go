// Package cmd wires the sheetbook command line. The bare command launches
// the interactive TUI; the subcommands are non-interactive front-ends over
// the same store client for scripting.
package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/Iron-Ham/sheetbook/internal/store"
	"github.com/Iron-Ham/sheetbook/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sheetbook",
	Short: "Terminal contact book backed by a spreadsheet API",
	Long: `Sheetbook manages a contact list stored in a SheetDB-compatible
spreadsheet API. Run without arguments for the interactive UI, or use the
subcommands for scripting.`,
	RunE: runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/sheetbook/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("sheet", "", "sheet id of the contact collection")
	_ = viper.BindPFlag("api.sheet_id", rootCmd.PersistentFlags().Lookup("sheet"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SHEETBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newClient builds the store client from the loaded config.
func newClient(cfg *config.Config, logger *logging.Logger) (store.Client, error) {
	return store.New(
		cfg.API.CollectionURL(),
		store.WithTimeout(cfg.API.Timeout()),
		store.WithLogger(logger),
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Close() }()

	client, err := newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	return tui.New(client, cfg, logger).Run()
}
