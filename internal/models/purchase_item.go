package models

import "time"

// PurchaseItem is one purchased line for a member of an entry. Rows are
// replaced wholesale on every save, never patched in place.
type PurchaseItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	EntryID   string    `gorm:"size:16;not null;index:idx_purchase_items_entry_member" json:"entryId"`
	MemberID  string    `gorm:"size:16;not null;index:idx_purchase_items_entry_member" json:"memberId"`
	Code      string    `gorm:"size:32" json:"code"`
	ShortName string    `gorm:"size:64" json:"shortName"`
	Quantity  int       `json:"quantity"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for PurchaseItem
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
