package cmd

import (
	"errors"
	"fmt"
	"time"

	"chroma-launcher/core/chroma"
	"chroma-launcher/core/config"
	"chroma-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var healthTimeout time.Duration

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query the heartbeat and version of the running Chroma server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		url := chroma.DefaultURL()
		client := chroma.NewClient(url, healthTimeout)

		ns, err := client.Heartbeat()
		if err != nil {
			logg.Error("Chroma heartbeat failed", zap.String("url", url), zap.Error(err))
			return errors.New("chroma server is not reachable")
		}
		version, err := client.Version()
		if err != nil {
			logg.Warn("Chroma version unavailable", zap.Error(err))
		}

		return printJSON(cmd.OutOrStdout(), map[string]any{
			"url":                  url,
			"nanosecond heartbeat": ns,
			"version":              version,
		})
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 5*time.Second, "Request timeout")
}
