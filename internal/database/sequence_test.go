package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"gorm.io/gorm"
)

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

// TestFormatID tests the per-type ID formats.
func TestFormatID(t *testing.T) {
	tests := []struct {
		seqType string
		n       uint64
		want    string
	}{
		{database.SeqMember, 1, "M001"},
		{database.SeqMember, 42, "M042"},
		{database.SeqMember, 1000, "M1000"},
		{database.SeqProduct, 1, "P0001"},
		{database.SeqProduct, 123, "P0123"},
		{database.SeqShop, 7, "S0007"},
		{database.SeqEntry, 1, "1"},
		{database.SeqEntry, 999, "999"},
	}
	for _, tt := range tests {
		if got := database.FormatID(tt.seqType, tt.n); got != tt.want {
			t.Errorf("FormatID(%s, %d) = %s, want %s", tt.seqType, tt.n, got, tt.want)
		}
	}
}

// TestNextID tests that counters increment per type and start at 1.
func TestNextID(t *testing.T) {
	db := setupTestDB(t)

	var ids []string
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, seqType := range []string{
			database.SeqMember, database.SeqMember,
			database.SeqProduct,
			database.SeqEntry, database.SeqEntry, database.SeqEntry,
		} {
			id, err := database.NextID(tx, seqType)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to issue IDs: %v", err)
	}

	want := []string{"M001", "M002", "P0001", "1", "2", "3"}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("ID %d: expected %s, got %s", i, w, ids[i])
		}
	}
}

// TestNextIDSurvivesRestart tests that the counter continues from the
// stored value in a fresh transaction.
func TestNextIDSurvivesRestart(t *testing.T) {
	db := setupTestDB(t)

	for i := 1; i <= 3; i++ {
		var id string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			id, err = database.NextID(tx, database.SeqShop)
			return err
		})
		if err != nil {
			t.Fatalf("Failed to issue ID: %v", err)
		}
		want := database.FormatID(database.SeqShop, uint64(i))
		if id != want {
			t.Errorf("Expected %s, got %s", want, id)
		}
	}
}
