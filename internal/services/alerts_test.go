package services_test

import (
	"testing"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
)

// TestDeadlineAlertsWindow tests the 7-day approach window boundaries.
func TestDeadlineAlertsWindow(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)

	release := now.AddDate(0, 0, -3)
	visible := true
	product := models.Product{ID: "P0001", Name: "Current Goods", DisplayFlag: &visible, ReleaseDate: &release}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	entries := []models.Entry{
		// Due today: counts.
		{ID: "1", ProductID: "P0001", Status: models.StatusNotApplied, ApplyEnd: timePtr(now.Add(2 * time.Hour))},
		// Due on the last day of the window: counts.
		{ID: "2", ProductID: "P0001", Status: models.StatusNotApplied, ApplyEnd: timePtr(now.AddDate(0, 0, 7))},
		// One day past the window: ignored.
		{ID: "3", ProductID: "P0001", Status: models.StatusNotApplied, ApplyEnd: timePtr(now.AddDate(0, 0, 8))},
		// Yesterday: already passed, ignored.
		{ID: "4", ProductID: "P0001", Status: models.StatusNotApplied, ApplyEnd: timePtr(now.AddDate(0, 0, -1))},
		// Right status for resultDate.
		{ID: "5", ProductID: "P0001", Status: models.StatusApplied, ResultDate: timePtr(now.AddDate(0, 0, 1))},
		{ID: "6", ProductID: "P0001", Status: models.StatusApplying, ResultDate: timePtr(now.AddDate(0, 0, 2))},
		// Won with a close purchase deadline.
		{ID: "7", ProductID: "P0001", Status: models.StatusWon, PurchaseEnd: timePtr(now.AddDate(0, 0, 3))},
		// Wrong status for the deadline it carries: ignored.
		{ID: "8", ProductID: "P0001", Status: models.StatusWon, ApplyEnd: timePtr(now.AddDate(0, 0, 1))},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	report, err := services.DeadlineAlerts(db, now)
	if err != nil {
		t.Fatalf("Failed to compute alerts: %v", err)
	}

	if len(report.Products) != 1 {
		t.Fatalf("Expected 1 product alert, got %d", len(report.Products))
	}
	counts := report.Products[0].Counts
	if counts.ApplyEnd != 2 {
		t.Errorf("Expected 2 applyEnd alerts, got %d", counts.ApplyEnd)
	}
	if counts.ResultDate != 2 {
		t.Errorf("Expected 2 resultDate alerts, got %d", counts.ResultDate)
	}
	if counts.PurchaseEnd != 1 {
		t.Errorf("Expected 1 purchaseEnd alert, got %d", counts.PurchaseEnd)
	}
	if report.Past != nil {
		t.Errorf("Expected no past bucket, got %+v", report.Past)
	}
}

// TestDeadlineAlertsCurrentVersusPast tests the 14-day currency split and
// the aggregated past bucket.
func TestDeadlineAlertsCurrentVersusPast(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	visible := true

	// Released exactly 14 days ago: still current.
	borderline := now.AddDate(0, 0, -14)
	// Released 15 days ago: past.
	old := now.AddDate(0, 0, -15)

	for _, p := range []models.Product{
		{ID: "P0001", Name: "Borderline", DisplayFlag: &visible, ReleaseDate: &borderline},
		{ID: "P0002", Name: "Old A", DisplayFlag: &visible, ReleaseDate: &old},
		{ID: "P0003", Name: "Old B", DisplayFlag: &visible, ReleaseDate: &old},
		// No release date: never alerts.
		{ID: "P0004", Name: "Undated", DisplayFlag: &visible},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("Failed to create product: %v", err)
		}
	}

	due := now.AddDate(0, 0, 1)
	for i, e := range []models.Entry{
		{ProductID: "P0001", Status: models.StatusNotApplied, ApplyEnd: &due},
		{ProductID: "P0002", Status: models.StatusNotApplied, ApplyEnd: &due},
		{ProductID: "P0003", Status: models.StatusWon, PurchaseEnd: &due},
		{ProductID: "P0004", Status: models.StatusNotApplied, ApplyEnd: &due},
	} {
		e.ID = string(rune('1' + i))
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	report, err := services.DeadlineAlerts(db, now)
	if err != nil {
		t.Fatalf("Failed to compute alerts: %v", err)
	}

	if len(report.Products) != 1 || report.Products[0].ProductID != "P0001" {
		t.Fatalf("Expected only the borderline product individually, got %+v", report.Products)
	}
	if report.Past == nil {
		t.Fatal("Expected an aggregated past bucket")
	}
	if report.Past.ApplyEnd != 1 || report.Past.PurchaseEnd != 1 {
		t.Errorf("Unexpected past bucket: %+v", report.Past)
	}
}

// TestDeadlineAlertsEmpty tests the no-alert shape.
func TestDeadlineAlertsEmpty(t *testing.T) {
	db := setupTestDB(t)

	report, err := services.DeadlineAlerts(db, time.Now())
	if err != nil {
		t.Fatalf("Failed to compute alerts: %v", err)
	}
	if len(report.Products) != 0 {
		t.Errorf("Expected no product alerts, got %+v", report.Products)
	}
	if report.Past != nil {
		t.Errorf("Expected nil past bucket, got %+v", report.Past)
	}
}
