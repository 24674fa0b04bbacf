package helpers

import (
	"testing"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// CreateTestProduct creates a visible product with a fixed release date.
func CreateTestProduct(t *testing.T, db *gorm.DB, id, name string, releaseDate *time.Time) {
	t.Helper()
	visible := true
	product := models.Product{
		ID:          id,
		Name:        name,
		ShortName:   name,
		DisplayFlag: &visible,
		ReleaseDate: releaseDate,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
}

// CreateTestMember creates a visible member.
func CreateTestMember(t *testing.T, db *gorm.DB, id, name string, primary bool) {
	t.Helper()
	visible := true
	member := models.Member{
		ID:          id,
		Name:        name,
		ShortName:   name,
		PrimaryFlg:  primary,
		DisplayFlag: &visible,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
}

// CreateTestEntry creates an entry directly, bypassing the service layer, so
// tests can set the status and member list they need.
func CreateTestEntry(t *testing.T, db *gorm.DB, id, productID string, status models.Status, members []models.PurchaseMember) {
	t.Helper()
	entry := models.Entry{
		ID:        id,
		ProductID: productID,
		Status:    status,
		Members:   members,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
}

// CreateTestPurchaseItem creates one purchase item row.
func CreateTestPurchaseItem(t *testing.T, db *gorm.DB, id, entryID, memberID, code string, quantity, amount int) {
	t.Helper()
	item := models.PurchaseItem{
		ID:       id,
		EntryID:  entryID,
		MemberID: memberID,
		Code:     code,
		Quantity: quantity,
		Amount:   amount,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create purchase item: %v", err)
	}
}
