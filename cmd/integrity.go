package cmd

import (
	"errors"
	"fmt"
	"time"

	"chroma-launcher/core/chroma"
	"chroma-launcher/core/config"
	"chroma-launcher/core/logger"
	"chroma-launcher/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform deployment checks",
	Long:  `Checks the data directory, the server executable, the running server and the snapshot bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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
		svc := integrity.NewService(cfg.Chroma, url, chroma.NewClient(url, 2*time.Second),
			openStorage(cfg, logg), cfg.Storage.Bucket, logg)

		if fixFlag && !svc.CheckDirectory().Exists {
			logg.Info("Fixing missing data directory...")
			if err := svc.FixDirectory(); err != nil {
				return fmt.Errorf("failed to fix data directory: %w", err)
			}
		}

		report := svc.Run(ctx)
		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}

		if !report.Healthy {
			logg.Warn("Deployment checks failed",
				zap.Bool("directory", report.Directory.OK()),
				zap.Bool("binary", report.Binary.Found),
				zap.Bool("server", report.Server.Reachable),
				zap.Bool("storage", report.Storage.Skipped || report.Storage.Exists),
			)
			return errors.New("integrity checks failed")
		}
		logg.Info("Deployment is healthy.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the data directory when missing")
}
