package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
)

// TestReplacePurchaseItems tests the delete-then-insert replace semantics.
func TestReplacePurchaseItems(t *testing.T) {
	db := setupTestDB(t)

	product, err := services.CreateProduct(db, services.ProductInput{Name: "Goods Set"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	entry, err := services.CreateEntry(db, services.EntryInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if _, err := services.UpdateEntryMembers(db, entry.ID, []services.MemberStatusInput{
		{MemberID: "M001", Name: "推し一号", Status: types.FlexInt64(models.StatusWon)},
		{MemberID: "M002", Name: "推し二号", Status: types.FlexInt64(models.StatusWon)},
	}, time.Now()); err != nil {
		t.Fatalf("Failed to update members: %v", err)
	}

	items, err := services.ReplacePurchaseItems(db, entry.ID, "M001", []services.PurchaseItemInput{
		{Code: "A", ShortName: "缶バッジ", Quantity: 2, Amount: 800},
		{Code: "B", ShortName: "アクスタ", Quantity: 1, Amount: 1500},
	})
	if err != nil {
		t.Fatalf("Failed to replace items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "" {
			t.Error("Expected generated item IDs")
		}
		if item.MemberID != "M001" {
			t.Errorf("Expected member M001, got %s", item.MemberID)
		}
	}

	// Replace again with a smaller set; the old rows must be gone.
	items, err = services.ReplacePurchaseItems(db, entry.ID, "M001", []services.PurchaseItemInput{
		{Code: "C", ShortName: "タペストリー", Quantity: 1, Amount: 3000},
	})
	if err != nil {
		t.Fatalf("Failed to replace items: %v", err)
	}
	if len(items) != 1 || items[0].Code != "C" {
		t.Errorf("Expected single item C after replace, got %v", items)
	}

	stored, err := services.ListPurchaseItems(db, entry.ID)
	if err != nil {
		t.Fatalf("Failed to list items: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("Expected 1 stored item, got %d", len(stored))
	}
}

// TestReplacePurchaseItemsDropsZeroQuantity tests that zero-quantity lines
// never persist.
func TestReplacePurchaseItemsDropsZeroQuantity(t *testing.T) {
	db := setupTestDB(t)

	product, err := services.CreateProduct(db, services.ProductInput{Name: "Goods Set"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	entry, err := services.CreateEntry(db, services.EntryInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if _, err := services.UpdateEntryMembers(db, entry.ID, []services.MemberStatusInput{
		{MemberID: "M001", Name: "推し", Status: types.FlexInt64(models.StatusWon)},
	}, time.Now()); err != nil {
		t.Fatalf("Failed to update members: %v", err)
	}

	items, err := services.ReplacePurchaseItems(db, entry.ID, "M001", []services.PurchaseItemInput{
		{Code: "A", Quantity: 0, Amount: 800},
		{Code: "B", Quantity: 3, Amount: 2400},
	})
	if err != nil {
		t.Fatalf("Failed to replace items: %v", err)
	}
	if len(items) != 1 || items[0].Code != "B" {
		t.Errorf("Expected only item B to persist, got %v", items)
	}

	// An all-zero payload clears the member's items.
	items, err = services.ReplacePurchaseItems(db, entry.ID, "M001", []services.PurchaseItemInput{
		{Code: "B", Quantity: 0, Amount: 2400},
	})
	if err != nil {
		t.Fatalf("Failed to replace items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %v", items)
	}
}

// TestReplacePurchaseItemsUnknownMember tests membership validation.
func TestReplacePurchaseItemsUnknownMember(t *testing.T) {
	db := setupTestDB(t)

	product, err := services.CreateProduct(db, services.ProductInput{Name: "Goods Set"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	entry, err := services.CreateEntry(db, services.EntryInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}

	_, err = services.ReplacePurchaseItems(db, entry.ID, "M404", []services.PurchaseItemInput{
		{Code: "A", Quantity: 1, Amount: 800},
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for member outside entry, got %v", err)
	}
}

// TestSummarizeEntry tests per-member roll-ups and totals.
func TestSummarizeEntry(t *testing.T) {
	db := setupTestDB(t)

	product, err := services.CreateProduct(db, services.ProductInput{Name: "Goods Set"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	entry, err := services.CreateEntry(db, services.EntryInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if _, err := services.UpdateEntryMembers(db, entry.ID, []services.MemberStatusInput{
		{MemberID: "M001", Name: "推し一号", Status: types.FlexInt64(models.StatusPurchased)},
		{MemberID: "M002", Name: "推し二号", Status: types.FlexInt64(models.StatusWon)},
	}, time.Now()); err != nil {
		t.Fatalf("Failed to update members: %v", err)
	}

	if _, err := services.ReplacePurchaseItems(db, entry.ID, "M001", []services.PurchaseItemInput{
		{Code: "A", Quantity: 2, Amount: 1600},
		{Code: "B", Quantity: 1, Amount: 1500},
	}); err != nil {
		t.Fatalf("Failed to replace items: %v", err)
	}

	summary, err := services.SummarizeEntry(db, entry.ID)
	if err != nil {
		t.Fatalf("Failed to summarize: %v", err)
	}

	if len(summary.Members) != 2 {
		t.Fatalf("Expected 2 member rows, got %d", len(summary.Members))
	}
	if summary.Members[0].MemberID != "M001" || summary.Members[0].Quantity != 3 || summary.Members[0].Amount != 3100 {
		t.Errorf("Unexpected first member summary: %+v", summary.Members[0])
	}
	if summary.Members[1].MemberID != "M002" || summary.Members[1].Quantity != 0 || summary.Members[1].Amount != 0 {
		t.Errorf("Expected zero row for member without items: %+v", summary.Members[1])
	}
	if summary.TotalQuantity != 3 || summary.TotalAmount != 3100 {
		t.Errorf("Unexpected totals: %d / %d", summary.TotalQuantity, summary.TotalAmount)
	}
}
