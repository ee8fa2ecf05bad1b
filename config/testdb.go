package config

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB points the package-level DB at a fresh in-memory SQLite
// database for the duration of a test. The application only uses SQL that is
// portable between Postgres and SQLite, so the handlers run unchanged.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	previous := DB
	DB = db
	t.Cleanup(func() { DB = previous })

	return db
}
