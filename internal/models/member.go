package models

import "time"

// Member is a household member who can apply for entries (M001, M002, ...).
// Members with PrimaryFlg set are added to every new entry automatically.
type Member struct {
	ID          string    `gorm:"primaryKey;size:16" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ShortName   string    `gorm:"size:64" json:"shortName"`
	SortOrder   int       `gorm:"column:sort_order" json:"order"`
	PrimaryFlg  bool      `json:"primaryFlg"`
	DisplayFlag *bool     `json:"displayFlag"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName overrides the table name for Member
func (Member) TableName() string {
	return "members"
}

// Visible reports whether the member should appear in default listings.
func (m *Member) Visible() bool {
	return m.DisplayFlag == nil || *m.DisplayFlag
}
