// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"testing"

	"dispatchbase/internal/config"
	"dispatchbase/internal/database"

	"gorm.io/gorm"
)

// OpenDB returns a migrated in-memory SQLite database that lives for the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenRawDB(t)
	if err := database.Migrate(db, ""); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// OpenRawDB returns an empty in-memory SQLite database.
func OpenRawDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{DBDriver: config.DriverSQLite, DatabaseDSN: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// Every pooled connection would get its own private memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
