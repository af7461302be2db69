package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bookmark-sync/core/cache"
	"bookmark-sync/core/config"
	"bookmark-sync/core/database"
	"bookmark-sync/core/logger"
	"bookmark-sync/core/storage"
	"bookmark-sync/feature/bookmarks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bookmark-sync",
	Short: "Bookmark Sync Service",
	Long: `Bookmark Sync stores per-user test bookmarks and reconciles the
offline changes of clients in single atomic sync operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug config gives readable CLI errors with ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// runtime bundles what every command needs before doing work.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// bootstrap loads configuration, builds the logger and connects to the database.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &runtime{cfg: cfg, logger: l, db: db}, nil
}

// identityResolver returns the database resolver, wrapped in the Redis cache
// when one is configured and reachable.
func (rt *runtime) identityResolver(ctx context.Context) bookmarks.IdentityResolver {
	resolver := bookmarks.IdentityResolver(bookmarks.NewDBResolver(rt.db))

	client, err := cache.NewClient(ctx, rt.cfg.Cache)
	switch {
	case err == nil:
		rt.logger.Info("Identity cache enabled", zap.String("addr", rt.cfg.Cache.Addr))
		return bookmarks.NewCachedResolver(resolver, client, rt.cfg.Cache.TTL(), rt.logger)
	case errors.Is(err, cache.ErrDisabled):
	default:
		rt.logger.Warn("Identity cache unavailable, resolving from database", zap.Error(err))
	}
	return resolver
}

// storageClient returns the snapshot storage client, or nil when no endpoint
// is configured. The bucket is created on first use.
func (rt *runtime) storageClient(ctx context.Context) (storage.Client, error) {
	client, err := storage.NewClient(rt.cfg.Storage)
	if errors.Is(err, storage.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, client, rt.cfg.Storage.Bucket); err != nil {
		return nil, err
	}
	return client, nil
}

// service builds the bookmark service the CLI commands operate on. Snapshot
// storage is only contacted when withSnapshots is set, so commands that never
// touch snapshots keep working while object storage is down.
func (rt *runtime) service(ctx context.Context, withSnapshots bool) (*bookmarks.Service, error) {
	var client storage.Client
	if withSnapshots {
		var err error
		if client, err = rt.storageClient(ctx); err != nil {
			return nil, err
		}
	}
	return bookmarks.NewService(rt.db, rt.identityResolver(ctx), client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Prefix, rt.logger), nil
}
