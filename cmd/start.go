package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subscription-sync/core/config"
	"subscription-sync/core/database"
	"subscription-sync/core/gateway"
	"subscription-sync/core/loader"
	"subscription-sync/core/logger"
	"subscription-sync/core/middleware/auth"
	"subscription-sync/core/middleware/rayid"
	"subscription-sync/core/storage"
	"subscription-sync/core/transient"
	syncfeature "subscription-sync/feature/sync"
	"subscription-sync/feature/sync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "subscription-sync/docs/swagger"
)

// @title Subscription Sync API
// @version 1.0
// @description API for reconciling subscription records against the payment processor.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the subscription sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the platform database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// The subscriptions table is owned by the e-commerce platform;
		// verify the columns this service reads and writes actually exist.
		table := models.Subscription{}.TableName()
		required := []string{"id", "profile_id", "gateway", "status", "expiration", "date_modified"}
		if missing, err := database.VerifyTableColumns(db, table, required); err != nil {
			logg.Warn("Could not inspect subscriptions table", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Fatal("Subscriptions table is missing required columns",
				zap.String("table", table),
				zap.Strings("missing", missing),
			)
		}

		// 4. Payment processor client
		gw := gateway.NewClient(cfg.Gateway)

		// 5. Log archiver (optional)
		var archiver *syncfeature.Archiver
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archiver = syncfeature.NewArchiver(store, cfg.Storage.Bucket, logg)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := archiver.EnsureBucket(ctx); err != nil {
				logg.Fatal("Failed to prepare archive bucket", zap.Error(err))
			}
			cancel()
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(syncfeature.NewFeature(db, gw, transient.NewMemoryStore(), archiver, logg, cfg.Sync))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
