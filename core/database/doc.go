// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL connections for production and SQLite connections for local
// development and tests, based on the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect, tunes the connection pool shared by
// every request, and verifies the connection with a bounded ping. In-memory
// SQLite databases are pinned to a single connection so that every statement
// sees the same database.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the migrate command verify that the
// tables it created carry the columns the bookmark store relies on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "bookmarks", []string{"user_id", "test_id"})
package database
