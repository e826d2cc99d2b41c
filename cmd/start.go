package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chroma-launcher/core/chroma"
	"chroma-launcher/core/config"
	"chroma-launcher/core/database"
	"chroma-launcher/core/loader"
	"chroma-launcher/core/logger"
	"chroma-launcher/core/middleware/auth"
	"chroma-launcher/core/middleware/rayid"
	"chroma-launcher/core/storage"

	"chroma-launcher/feature/integrity"
	"chroma-launcher/feature/launcher"
	"chroma-launcher/feature/registry"
	"chroma-launcher/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "chroma-launcher/docs/swagger"
)

// @title Chroma Launcher Admin API
// @version 1.0
// @description Status, integrity and launch history of a supervised Chroma server.
// @host localhost:8090
// @BasePath /

var serveFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Prepare and start the Chroma vector database",
	Long: `Creates the data directory, builds the server settings and locates the Chroma server.
With --serve the server is run and supervised until SIGINT or SIGTERM, and the admin API
is started when server.port is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Startup Routine
		l := launcher.New(cfg.Chroma, logg)
		res, startErr := l.Start()

		// 4. Launch Registry (Optional, disabled without database.driver)
		reg := openRegistry(cfg, logg)

		var rec *registry.LaunchRecord
		if reg != nil {
			if rec, err = reg.RecordStart(cmd.Context(), cfg.Chroma.Binary, cfg.Chroma.DataDir, serveFlag, res, startErr); err != nil {
				logg.Warn("Failed to record launch", zap.Error(err))
			}
		}
		if startErr != nil {
			return startErr
		}
		if !serveFlag {
			return nil
		}

		// 5. Supervise
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		g, gctx := errgroup.WithContext(runCtx)

		var serveErr error
		g.Go(func() error {
			// Admin server goes down with the process
			defer cancel()
			serveErr = l.Serve(gctx, res)
			return serveErr
		})

		if cfg.Server.Enabled() {
			client := chroma.NewClient(res.Settings.URL(), 2*time.Second)
			app, err := newAdminApp(cfg, logg,
				status.NewFeature(l, client, logg),
				integrity.NewFeature(cfg.Chroma, res.Settings.URL(), client, openStorage(cfg, logg), cfg.Storage.Bucket, logg),
				registry.NewFeature(reg, logg),
			)
			if err != nil {
				cancel()
				_ = g.Wait()
				return err
			}

			g.Go(func() error {
				logg.Info("Starting admin server", zap.String("addr", cfg.Server.Addr()))
				if err := app.Listen(cfg.Server.Addr()); err != nil {
					return fmt.Errorf("admin server failed: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logg.Info("Shutting down admin server...")
				return app.ShutdownWithTimeout(5 * time.Second)
			})
		}

		err = g.Wait()
		if reg != nil && rec != nil {
			if err := reg.RecordExit(context.Background(), rec.ID, serveErr); err != nil {
				logg.Warn("Failed to record launch exit", zap.Error(err))
			}
		}
		if serveErr != nil {
			return serveErr
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&serveFlag, "serve", false, "Run and supervise the server after startup")
}

// openRegistry connects the launch registry. It returns nil when no database is
// configured; a failed connection only disables it.
func openRegistry(cfg *config.Config, logg *zap.Logger) *registry.Service {
	if !cfg.Database.Enabled() {
		return nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	reg, err := registry.NewService(db)
	if err != nil {
		logg.Warn("Launch registry unavailable", zap.Error(err))
		return nil
	}
	logg.Debug("Connected to registry database", zap.String("driver", cfg.Database.Driver))
	return reg
}

// openStorage creates the snapshot storage client, or nil when no endpoint is
// configured or the client cannot be created.
func openStorage(cfg *config.Config, logg *zap.Logger) storage.Client {
	if !cfg.Storage.Enabled() {
		return nil
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
		return nil
	}
	return store
}

func newAdminApp(cfg *config.Config, logg *zap.Logger, features ...loader.Feature) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}

	// RayID first so every log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}
