package services

import (
	"errors"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryInput is the create/update payload for an entry. The status field is
// absent on purpose: entry status is derived from member statuses and only
// changes through UpdateEntryMembers.
type EntryInput struct {
	ProductID     string          `json:"productId"`
	ShopShortName string          `json:"shopShortName"`
	ApplyMethod   types.FlexInt64 `json:"applyMethod"`
	ApplyStart    types.FlexTime  `json:"applyStart"`
	ApplyEnd      types.FlexTime  `json:"applyEnd"`
	ResultDate    types.FlexTime  `json:"resultDate"`
	PurchaseStart types.FlexTime  `json:"purchaseStart"`
	PurchaseEnd   types.FlexTime  `json:"purchaseEnd"`
	URL           string          `json:"url"`
	Memo          string          `json:"memo"`
}

// EntryFilter narrows ListEntries.
type EntryFilter struct {
	ProductID string
	Status    *models.Status
}

// MemberStatusInput is one member's status in an UpdateEntryMembers payload.
type MemberStatusInput struct {
	MemberID string          `json:"memberId"`
	Name     string          `json:"name"`
	Status   types.FlexInt64 `json:"status"`
}

// ListEntries returns entries, newest first, optionally filtered by product
// and status.
func ListEntries(db *gorm.DB, filter EntryFilter) ([]models.Entry, error) {
	query := db.Order("id desc")
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	var entries []models.Entry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry returns one entry or ErrNotFound.
func GetEntry(db *gorm.DB, id string) (*models.Entry, error) {
	var entry models.Entry
	if err := db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("entry %q", id)
		}
		return nil, err
	}
	return &entry, nil
}

// CreateEntry validates the payload, then in one transaction issues the
// entry ID, seeds the member list from primary members, and creates the
// entry at status not-applied.
func CreateEntry(db *gorm.DB, in EntryInput) (*models.Entry, error) {
	if in.ProductID == "" {
		return nil, validationf("productId is required")
	}
	if _, err := GetProduct(db, in.ProductID); err != nil {
		return nil, err
	}

	var entry models.Entry
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := database.NextID(tx, database.SeqEntry)
		if err != nil {
			return err
		}

		var primaries []models.Member
		if err := tx.Where("primary_flg = ?", true).
			Order("sort_order, id").Find(&primaries).Error; err != nil {
			return err
		}
		members := make(models.MemberList, 0, len(primaries))
		for _, m := range primaries {
			members = append(members, models.PurchaseMember{
				MemberID: m.ID,
				Name:     m.Name,
				Status:   models.StatusNotApplied,
			})
		}

		entry = models.Entry{
			ID:            id,
			ProductID:     in.ProductID,
			ShopShortName: in.ShopShortName,
			Status:        models.StatusNotApplied,
			ApplyMethod:   in.ApplyMethod.Int(),
			ApplyStart:    in.ApplyStart.Ptr(),
			ApplyEnd:      in.ApplyEnd.Ptr(),
			ResultDate:    in.ResultDate.Ptr(),
			PurchaseStart: in.PurchaseStart.Ptr(),
			PurchaseEnd:   in.PurchaseEnd.Ptr(),
			URL:           in.URL,
			Memo:          in.Memo,
			Members:       members,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the schedule and label fields of an entry. Status,
// member list, and purchaseDate are untouched here.
func UpdateEntry(db *gorm.DB, id string, in EntryInput) (*models.Entry, error) {
	if in.ProductID == "" {
		return nil, validationf("productId is required")
	}
	if _, err := GetProduct(db, in.ProductID); err != nil {
		return nil, err
	}

	entry, err := GetEntry(db, id)
	if err != nil {
		return nil, err
	}

	entry.ProductID = in.ProductID
	entry.ShopShortName = in.ShopShortName
	entry.ApplyMethod = in.ApplyMethod.Int()
	entry.ApplyStart = in.ApplyStart.Ptr()
	entry.ApplyEnd = in.ApplyEnd.Ptr()
	entry.ResultDate = in.ResultDate.Ptr()
	entry.PurchaseStart = in.PurchaseStart.Ptr()
	entry.PurchaseEnd = in.PurchaseEnd.Ptr()
	entry.URL = in.URL
	entry.Memo = in.Memo

	if err := db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntryMembers replaces an entry's member list and persists the
// member list, the derived status, and a conditional purchaseDate stamp in
// a single transaction. The first time any member reaches purchased while
// the entry has no purchaseDate, purchaseDate is stamped with now and is
// never overwritten afterwards.
func UpdateEntryMembers(db *gorm.DB, id string, inputs []MemberStatusInput, now time.Time) (*models.Entry, error) {
	members := make(models.MemberList, 0, len(inputs))
	for _, in := range inputs {
		if in.MemberID == "" {
			return nil, validationf("memberId is required")
		}
		status := models.Status(in.Status.Int())
		if !status.Valid() {
			return nil, validationf("unknown status code %d for member %q", in.Status.Int(), in.MemberID)
		}
		members = append(members, models.PurchaseMember{
			MemberID: in.MemberID,
			Name:     in.Name,
			Status:   status,
		})
	}

	var entry models.Entry
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("entry %q", id)
			}
			return err
		}

		entry.Members = members
		entry.Status = Derive(members)
		if entry.PurchaseDate == nil && anyPurchased(members) {
			entry.PurchaseDate = &now
		}

		return tx.Model(&entry).Select("Members", "Status", "PurchaseDate").Updates(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry hard-deletes an entry and its purchase items in one
// transaction.
func DeleteEntry(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Entry{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFoundf("entry %q", id)
		}
		return tx.Where("entry_id = ?", id).Delete(&models.PurchaseItem{}).Error
	})
}

// lockForUpdate adds a row lock where the dialect supports one. SQLite
// writers serialize on the database lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
