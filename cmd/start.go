package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmark-sync/core/loader"
	"bookmark-sync/core/logger"
	"bookmark-sync/core/middleware/auth"
	"bookmark-sync/core/middleware/rayid"
	"bookmark-sync/feature/bookmarks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bookmark-sync/docs/swagger"
)

// @title Bookmark Sync API
// @version 1.0
// @description API for storing user test bookmarks and syncing offline changes.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bookmark sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and database (required)
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg.Info("Connected to database", zap.String("driver", rt.cfg.Database.Driver))

		ctx := context.Background()

		// 2. Optional backends: Redis identity cache and snapshot storage
		identity := rt.identityResolver(ctx)
		store, err := rt.storageClient(ctx)
		if err != nil {
			logg.Warn("Snapshot storage unavailable, snapshot routes will return 503", zap.Error(err))
			store = nil
		} else if store == nil {
			logg.Info("Snapshot storage not configured")
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(bookmarks.NewFeature(
			rt.db,
			identity,
			store,
			rt.cfg.Storage.Bucket,
			rt.cfg.Storage.Prefix,
			rt.cfg.Server.RequestTimeout(),
			logg,
		))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: rt.cfg.Server.ApiKey,
			Skip:   []string{"/swagger"},
		}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(rt.cfg.Server.RequestTimeout())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
