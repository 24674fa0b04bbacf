package services_test

import (
	"testing"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
)

// TestScheduleEmitsByStatus tests which date fields become events for each
// lifecycle stage.
func TestScheduleEmitsByStatus(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	visible := true

	product := models.Product{ID: "P0001", Name: "Summer Goods", DisplayFlag: &visible}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	applyStart := time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC)
	applyEnd := time.Date(2026, 8, 20, 23, 59, 0, 0, time.UTC)
	resultDate := time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC)
	purchaseStart := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	entries := []models.Entry{
		// Applied: apply dates plus the result date.
		{ID: "1", ProductID: "P0001", Status: models.StatusApplied,
			ApplyStart: &applyStart, ApplyEnd: &applyEnd, ResultDate: &resultDate},
		// Won: purchase window only; the purchase end is undecided.
		{ID: "2", ProductID: "P0001", Status: models.StatusWon,
			PurchaseStart: &purchaseStart},
		// Purchased: contributes nothing.
		{ID: "3", ProductID: "P0001", Status: models.StatusPurchased,
			PurchaseStart: &purchaseStart},
		// Lost: contributes nothing.
		{ID: "4", ProductID: "P0001", Status: models.StatusLost,
			ResultDate: &resultDate},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	view, err := services.Schedule(db, now)
	if err != nil {
		t.Fatalf("Failed to compute schedule: %v", err)
	}

	if len(view.Events) != 5 {
		t.Fatalf("Expected 5 events, got %d: %+v", len(view.Events), view.Events)
	}

	// Dated events first, in chronological order.
	wantTypes := []string{
		services.EventApplyOpen,
		services.EventApplyClose,
		services.EventResult,
		services.EventPurchaseOpen,
		services.EventPurchaseClose,
	}
	for i, want := range wantTypes {
		if view.Events[i].Type != want {
			t.Errorf("Event %d: expected type %s, got %s", i, want, view.Events[i].Type)
		}
	}

	first := view.Events[0]
	if first.Date != "08/12(水)" {
		t.Errorf("Expected date 08/12(水), got %s", first.Date)
	}
	if first.Time != "10:00" {
		t.Errorf("Expected time 10:00, got %s", first.Time)
	}
	if first.Label != "応募" {
		t.Errorf("Expected label 応募, got %s", first.Label)
	}
	if first.ProductName != "Summer Goods" {
		t.Errorf("Expected product name in event, got %s", first.ProductName)
	}

	// The undecided purchase end sorts last with empty display fields.
	last := view.Events[len(view.Events)-1]
	if last.EntryID != "2" || last.Date != "" || last.Time != "" {
		t.Errorf("Expected undecided purchase end last, got %+v", last)
	}

	if len(view.Products) != 1 || view.Products[0].ProductID != "P0001" {
		t.Errorf("Expected one product ref, got %+v", view.Products)
	}
}

// TestScheduleWindow tests the ±1 month date filter.
func TestScheduleWindow(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	visible := true

	product := models.Product{ID: "P0001", Name: "Goods", DisplayFlag: &visible}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	inside := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)  // window edge
	outside := time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC) // one day past
	tooOld := time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)  // one day before

	entries := []models.Entry{
		{ID: "1", ProductID: "P0001", Status: models.StatusNotApplied, ApplyStart: &inside},
		{ID: "2", ProductID: "P0001", Status: models.StatusNotApplied, ApplyStart: &outside},
		{ID: "3", ProductID: "P0001", Status: models.StatusNotApplied, ApplyStart: &tooOld},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	view, err := services.Schedule(db, now)
	if err != nil {
		t.Fatalf("Failed to compute schedule: %v", err)
	}
	if len(view.Events) != 1 || view.Events[0].EntryID != "1" {
		t.Errorf("Expected only the in-window event, got %+v", view.Events)
	}
}

// TestScheduleResolvesShopName tests the short-name lookup.
func TestScheduleResolvesShopName(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	visible := true

	product := models.Product{ID: "P0001", Name: "Goods", DisplayFlag: &visible}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	if _, err := services.CreateShop(db, services.ShopInput{Name: "アニメイト秋葉原", ShortName: "アニメイト"}); err != nil {
		t.Fatalf("Failed to create shop: %v", err)
	}

	applyStart := now.AddDate(0, 0, 1)
	entries := []models.Entry{
		{ID: "1", ProductID: "P0001", ShopShortName: "アニメイト", Status: models.StatusNotApplied, ApplyStart: &applyStart},
		{ID: "2", ProductID: "P0001", ShopShortName: "通販", Status: models.StatusNotApplied, ApplyStart: &applyStart},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	view, err := services.Schedule(db, now)
	if err != nil {
		t.Fatalf("Failed to compute schedule: %v", err)
	}
	names := map[string]string{}
	for _, ev := range view.Events {
		names[ev.EntryID] = ev.ShopName
	}
	if names["1"] != "アニメイト秋葉原" {
		t.Errorf("Expected resolved shop name, got %q", names["1"])
	}
	if names["2"] != "通販" {
		t.Errorf("Expected denormalized label fallback, got %q", names["2"])
	}
}

// TestScheduleEmpty tests that the view never returns nil slices.
func TestScheduleEmpty(t *testing.T) {
	db := setupTestDB(t)

	view, err := services.Schedule(db, time.Now())
	if err != nil {
		t.Fatalf("Failed to compute schedule: %v", err)
	}
	if view.Events == nil || view.Products == nil {
		t.Error("Expected empty slices, got nil")
	}
}
