package services_test

import (
	"fmt"
	"testing"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
)

func members(statuses ...models.Status) []models.PurchaseMember {
	ms := make([]models.PurchaseMember, 0, len(statuses))
	for i, s := range statuses {
		ms = append(ms, models.PurchaseMember{
			MemberID: fmt.Sprintf("M%03d", i+1),
			Status:   s,
		})
	}
	return ms
}

// TestDerive covers the status derivation rules over member lists.
func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		members []models.PurchaseMember
		want    models.Status
	}{
		{"empty list", nil, models.StatusNotApplied},
		{"single not applied", members(models.StatusNotApplied), models.StatusNotApplied},
		{"single won", members(models.StatusWon), models.StatusWon},
		{"minimum wins", members(models.StatusWon, models.StatusPurchased), models.StatusWon},
		{"lost below purchased", members(models.StatusLost, models.StatusPurchased), models.StatusPurchased},
		{"mixed applied and unapplied", members(models.StatusNotApplied, models.StatusApplied), models.StatusApplying},
		{"mixed not applied and won", members(models.StatusNotApplied, models.StatusWon), models.StatusApplying},
		{"excluded ignored", members(models.StatusExcluded, models.StatusWon), models.StatusWon},
		{"all excluded", members(models.StatusExcluded, models.StatusExcluded), models.StatusNotApplied},
		{"excluded does not make mixed", members(models.StatusExcluded, models.StatusNotApplied), models.StatusNotApplied},
		{"all lost", members(models.StatusLost, models.StatusLost), models.StatusLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.Derive(tt.members)
			if got != tt.want {
				t.Errorf("Derive() = %d, want %d", got, tt.want)
			}
		})
	}
}
