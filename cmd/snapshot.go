package cmd

import (
	"fmt"

	"chroma-launcher/core/config"
	"chroma-launcher/core/logger"
	"chroma-launcher/core/storage"
	"chroma-launcher/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	restoreDir string
	pruneKeep  int
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Upload the data directory to object storage",
	Long:  `Copies every file of the Chroma data directory to <bucket>/snapshots/<UTC timestamp>/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, logg, err := snapshotService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		snap, err := svc.Snapshot(cmd.Context(), cfg.Chroma.DataDir)
		if err != nil {
			return err
		}
		logg.Info("Snapshot uploaded", zap.String("name", snap.Name), zap.Int("objects", snap.Objects))
		return printJSON(cmd.OutOrStdout(), snap)
	},
}

// snapshotListCmd represents the snapshot list command
var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, logg, err := snapshotService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		names, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), names)
	},
}

// snapshotRestoreCmd represents the snapshot restore command
var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore NAME",
	Short: "Download a snapshot into an empty data directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, logg, err := snapshotService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		dir := restoreDir
		if dir == "" {
			dir = cfg.Chroma.DataDir
		}
		snap, err := svc.Restore(cmd.Context(), args[0], dir)
		if err != nil {
			return err
		}
		logg.Info("Snapshot restored", zap.String("name", snap.Name), zap.String("dir", dir))
		return printJSON(cmd.OutOrStdout(), snap)
	},
}

// snapshotVerifyCmd represents the snapshot verify command
var snapshotVerifyCmd = &cobra.Command{
	Use:   "verify NAME",
	Short: "Compare the data directory with a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, logg, err := snapshotService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		diff, err := svc.Verify(cmd.Context(), args[0], cfg.Chroma.DataDir)
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), diff); err != nil {
			return err
		}
		if !diff.InSync() {
			return fmt.Errorf("data directory differs from snapshot %s", diff.Name)
		}
		return nil
	},
}

// snapshotPruneCmd represents the snapshot prune command
var snapshotPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, logg, err := snapshotService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		removed, err := svc.Prune(cmd.Context(), pruneKeep)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), removed)
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotListCmd, snapshotRestoreCmd, snapshotVerifyCmd, snapshotPruneCmd)

	snapshotRestoreCmd.Flags().StringVar(&restoreDir, "dir", "", "Target directory (defaults to chroma.data_dir)")
	snapshotPruneCmd.Flags().IntVar(&pruneKeep, "keep", 5, "Number of snapshots to keep")
}

func snapshotService() (*config.Config, *snapshot.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return cfg, snapshot.NewService(store, cfg.Storage.Bucket, logg), logg, nil
}
