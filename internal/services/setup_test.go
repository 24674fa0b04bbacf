package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func timePtr(t time.Time) *time.Time {
	return &t
}
