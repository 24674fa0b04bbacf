package models

import (
	"time"
)

// ProductRelation is one sellable line of a product (e.g. a per-volume SKU).
type ProductRelation struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Amount    int    `json:"amount"`
}

// Product is a tracked release. IDs are sequence-assigned (P0001, P0002, ...).
type Product struct {
	ID          string       `gorm:"primaryKey;size:16" json:"id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	ShortName   string       `gorm:"size:64" json:"shortName"`
	DisplayFlag *bool        `json:"displayFlag"`
	ReleaseDate *time.Time   `json:"releaseDate"`
	Relations   RelationList `gorm:"type:json" json:"productRelations"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}

// Visible reports whether the product should appear in default listings.
// A missing flag means visible.
func (p *Product) Visible() bool {
	return p.DisplayFlag == nil || *p.DisplayFlag
}

// Current reports whether the product counts as "current" for deadline
// alerting: it has a release date and that date is today-14d or later,
// compared by calendar date. Products without a release date are neither
// current nor past.
func (p *Product) Current(today time.Time) bool {
	if p.ReleaseDate == nil {
		return false
	}
	threshold := StartOfDay(today).AddDate(0, 0, -14)
	return !StartOfDay(*p.ReleaseDate).Before(threshold)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
