package models_test

import (
	"testing"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
)

// TestStatusValid tests the defined code set.
func TestStatusValid(t *testing.T) {
	valid := []models.Status{
		models.StatusNotApplied,
		models.StatusExcluded,
		models.StatusApplying,
		models.StatusApplied,
		models.StatusWon,
		models.StatusPurchased,
		models.StatusLost,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Expected status %d to be valid", s)
		}
	}
	for _, s := range []models.Status{-1, 1, 15, 41, 100} {
		if s.Valid() {
			t.Errorf("Expected status %d to be invalid", s)
		}
	}
}

// TestStatusOrder tests that display order follows the lifecycle, with
// excluded last.
func TestStatusOrder(t *testing.T) {
	seq := []models.Status{
		models.StatusNotApplied,
		models.StatusApplying,
		models.StatusApplied,
		models.StatusWon,
		models.StatusPurchased,
		models.StatusLost,
		models.StatusExcluded,
	}
	for i := 1; i < len(seq); i++ {
		if seq[i-1].Order() >= seq[i].Order() {
			t.Errorf("Expected %v to sort before %v", seq[i-1], seq[i])
		}
	}
	if models.Status(55).Order() <= models.StatusExcluded.Order() {
		t.Error("Expected unknown codes to sort after every known code")
	}
}

// TestStatusString tests the display labels.
func TestStatusString(t *testing.T) {
	tests := map[models.Status]string{
		models.StatusNotApplied: "未応募",
		models.StatusWon:        "当選",
		models.StatusPurchased:  "購入済",
		models.Status(55):       "不明",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %s, want %s", s, got, want)
		}
	}
}
