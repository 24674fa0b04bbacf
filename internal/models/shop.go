package models

import (
	"time"

	"gorm.io/datatypes"
)

// DeadlineDefault is a shop-level form default for one deadline field:
// a relative day count from the release date and a time of day ("HH:mm").
// Defaults are suggestions for the entry form only, nothing enforces them.
type DeadlineDefault struct {
	Days *int   `json:"days"`
	Time string `json:"time"`
}

// ShopDefaults carries the per-deadline defaults of a shop.
type ShopDefaults struct {
	ApplyStart    DeadlineDefault `json:"applyStart"`
	ApplyEnd      DeadlineDefault `json:"applyEnd"`
	Result        DeadlineDefault `json:"result"`
	PurchaseStart DeadlineDefault `json:"purchaseStart"`
	PurchaseEnd   DeadlineDefault `json:"purchaseEnd"`
}

// Shop is a retail shop entries can be placed at (S0001, S0002, ...).
type Shop struct {
	ID          string                           `gorm:"primaryKey;size:16" json:"id"`
	Name        string                           `gorm:"size:255;not null" json:"name"`
	ShortName   string                           `gorm:"size:64" json:"shortName"`
	SortOrder   int                              `gorm:"column:sort_order" json:"order"`
	DisplayFlag *bool                            `json:"displayFlag"`
	Address     string                           `gorm:"size:255" json:"address"`
	Defaults    datatypes.JSONType[ShopDefaults] `gorm:"type:json" json:"defaults"`
	CreatedAt   time.Time                        `json:"-"`
	UpdatedAt   time.Time                        `json:"-"`
}

// TableName overrides the table name for Shop
func (Shop) TableName() string {
	return "shops"
}

// Visible reports whether the shop should appear in default listings.
func (s *Shop) Visible() bool {
	return s.DisplayFlag == nil || *s.DisplayFlag
}
