package cmd

import (
	"fmt"

	"bookmark-sync/core/database"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the users and bookmarks tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates the users and bookmarks tables (including the unique
(user_id, test_id) index) and verifies every column the service depends on.`,
	RunE: runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger

	if err := rt.db.AutoMigrate(&models.User{}, &models.Bookmark{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	missing, err := database.MissingColumns(rt.db, models.Bookmark{}.TableName(), models.Columns)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("bookmarks table is missing columns: %v", missing)
	}

	l.Info("Schema is up to date", zap.Strings("tables", []string{"users", "bookmarks"}))
	return nil
}
