package services

import (
	"github.com/google/uuid"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
	"gorm.io/gorm"
)

// PurchaseItemInput is one line of a replace-on-save payload.
type PurchaseItemInput struct {
	Code      string          `json:"code"`
	ShortName string          `json:"shortName"`
	Quantity  types.FlexInt64 `json:"quantity"`
	Amount    types.FlexInt64 `json:"amount"`
}

// ListPurchaseItems returns all purchase items of an entry, grouped by the
// member order of the entry's member list.
func ListPurchaseItems(db *gorm.DB, entryID string) ([]models.PurchaseItem, error) {
	if _, err := GetEntry(db, entryID); err != nil {
		return nil, err
	}
	var items []models.PurchaseItem
	if err := db.Where("entry_id = ?", entryID).
		Order("member_id, code").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplacePurchaseItems replaces the purchase items of one (entry, member)
// pair: delete all existing rows, then insert the replacement set, one
// transaction. Zero-quantity lines are dropped, never persisted.
func ReplacePurchaseItems(db *gorm.DB, entryID, memberID string, inputs []PurchaseItemInput) ([]models.PurchaseItem, error) {
	entry, err := GetEntry(db, entryID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, m := range entry.Members {
		if m.MemberID == memberID {
			found = true
			break
		}
	}
	if !found {
		return nil, notFoundf("member %q in entry %q", memberID, entryID)
	}

	items := make([]models.PurchaseItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity.Int() == 0 {
			continue
		}
		items = append(items, models.PurchaseItem{
			ID:        uuid.NewString(),
			EntryID:   entryID,
			MemberID:  memberID,
			Code:      in.Code,
			ShortName: in.ShortName,
			Quantity:  in.Quantity.Int(),
			Amount:    in.Amount.Int(),
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ? AND member_id = ?", entryID, memberID).
			Delete(&models.PurchaseItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
