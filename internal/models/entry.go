package models

import "time"

// PurchaseMember is one member's participation in an entry, embedded in
// the entry document.
type PurchaseMember struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Status   Status `json:"status"`
}

// Entry is one tracked lottery/pre-order campaign for a product at a shop.
// IDs are sequence-assigned plain integer strings. Status is derived from
// the embedded member statuses and must not be written independently once
// members carry statuses other than excluded; see services.Derive.
type Entry struct {
	ID            string     `gorm:"primaryKey;size:16" json:"id"`
	ProductID     string     `gorm:"size:16;not null;index" json:"productId"`
	ShopShortName string     `gorm:"size:64" json:"shopShortName"`
	Status        Status     `gorm:"not null;default:0" json:"status"`
	ApplyMethod   int        `json:"applyMethod"`
	ApplyStart    *time.Time `json:"applyStart"`
	ApplyEnd      *time.Time `json:"applyEnd"`
	ResultDate    *time.Time `json:"resultDate"`
	PurchaseStart *time.Time `json:"purchaseStart"`
	PurchaseEnd   *time.Time `json:"purchaseEnd"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	URL           string     `gorm:"size:1024" json:"url"`
	Memo          string     `gorm:"size:1024" json:"memo"`
	Members       MemberList `gorm:"type:json" json:"purchaseMembers"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// TableName overrides the table name for Entry
func (Entry) TableName() string {
	return "entries"
}
