package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
)

// TestCreateProductIssuesSequentialIDs tests the P-prefixed ID sequence.
func TestCreateProductIssuesSequentialIDs(t *testing.T) {
	db := setupTestDB(t)

	first, err := services.CreateProduct(db, services.ProductInput{Name: "First"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	second, err := services.CreateProduct(db, services.ProductInput{Name: "Second"})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	if first.ID != "P0001" || second.ID != "P0002" {
		t.Errorf("Expected P0001/P0002, got %s/%s", first.ID, second.ID)
	}
}

// TestCreateProductValidation tests the name requirement.
func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreateProduct(db, services.ProductInput{Name: "  "})
	if !errors.Is(err, services.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

// TestListProductsHidesInvisible tests the display flag filter and the
// all switch.
func TestListProductsHidesInvisible(t *testing.T) {
	db := setupTestDB(t)

	hidden := false
	if _, err := services.CreateProduct(db, services.ProductInput{Name: "Visible"}); err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	if _, err := services.CreateProduct(db, services.ProductInput{Name: "Hidden", DisplayFlag: &hidden}); err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	visible, err := services.ListProducts(db, false)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Visible" {
		t.Errorf("Expected only the visible product, got %+v", visible)
	}

	all, err := services.ListProducts(db, true)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected both products with all=true, got %d", len(all))
	}
}

// TestProductRelations tests that the relation list round-trips through the
// JSON column.
func TestProductRelations(t *testing.T) {
	db := setupTestDB(t)

	created, err := services.CreateProduct(db, services.ProductInput{
		Name:        "Blind Box",
		ReleaseDate: types.NewFlexTime(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		Relations: types.FlexList[models.ProductRelation]{
			{Code: "A", Name: "缶バッジ", UnitPrice: 400, Quantity: 2, Amount: 800},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	got, err := services.GetProduct(db, created.ID)
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if len(got.Relations) != 1 || got.Relations[0].Code != "A" || got.Relations[0].Amount != 800 {
		t.Errorf("Unexpected relations: %+v", got.Relations)
	}
	if got.ReleaseDate == nil {
		t.Error("Expected release date to persist")
	}
}

// TestUpdateAndDeleteProductNotFound tests the not-found paths.
func TestUpdateAndDeleteProductNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.UpdateProduct(db, "P9999", services.ProductInput{Name: "X"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on update, got %v", err)
	}
	if err := services.DeleteProduct(db, "P9999"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on delete, got %v", err)
	}
}

// TestShopDefaultsRoundTrip tests the deadline defaults JSON column.
func TestShopDefaultsRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	days := 7
	created, err := services.CreateShop(db, services.ShopInput{
		Name:      "アニメイト",
		ShortName: "アニメイト",
		Defaults: models.ShopDefaults{
			ApplyEnd: models.DeadlineDefault{Days: &days, Time: "23:59"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create shop: %v", err)
	}
	if created.ID != "S0001" {
		t.Errorf("Expected shop ID S0001, got %s", created.ID)
	}

	got, err := services.GetShop(db, created.ID)
	if err != nil {
		t.Fatalf("Failed to get shop: %v", err)
	}
	defaults := got.Defaults.Data()
	if defaults.ApplyEnd.Days == nil || *defaults.ApplyEnd.Days != 7 || defaults.ApplyEnd.Time != "23:59" {
		t.Errorf("Unexpected defaults: %+v", defaults)
	}
}

// TestListOptions tests the option tables seeded at startup.
func TestListOptions(t *testing.T) {
	db := setupTestDB(t)
	if err := database.SeedOptions(db); err != nil {
		t.Fatalf("Failed to seed options: %v", err)
	}

	statuses, err := services.ListOptions(db, models.OptionKindStatus)
	if err != nil {
		t.Fatalf("Failed to list status options: %v", err)
	}
	if len(statuses) != 7 {
		t.Errorf("Expected 7 status options, got %d", len(statuses))
	}
	if statuses[0].Name != "未応募" {
		t.Errorf("Expected 未応募 first, got %s", statuses[0].Name)
	}

	methods, err := services.ListOptions(db, models.OptionKindApplyMethod)
	if err != nil {
		t.Fatalf("Failed to list apply method options: %v", err)
	}
	if len(methods) != 4 {
		t.Errorf("Expected 4 apply method options, got %d", len(methods))
	}

	if _, err := services.ListOptions(db, "OP999"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown kind, got %v", err)
	}
}
