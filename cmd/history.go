package cmd

import (
	"errors"
	"fmt"

	"chroma-launcher/core/config"
	"chroma-launcher/core/database"
	"chroma-launcher/feature/registry"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent launches from the registry database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Registry is required here
		if !cfg.Database.Enabled() {
			return errors.New("database.driver is not configured")
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		reg, err := registry.NewService(db)
		if err != nil {
			return err
		}

		records, err := reg.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), records)
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", registry.DefaultLimit, "Maximum number of records")
}
