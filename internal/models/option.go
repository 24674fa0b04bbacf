package models

// Option table kinds.
const (
	OptionKindStatus      = "OP002" // status code -> name -> order
	OptionKindApplyMethod = "OP003" // apply-method code -> name
)

// Option is one row of a read-only reference table. OP002 is the
// authoritative ordering and labeling for status codes, OP003 for apply
// methods.
type Option struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	Kind      string `gorm:"size:8;not null;uniqueIndex:idx_options_kind_code" json:"-"`
	Code      int    `gorm:"not null;uniqueIndex:idx_options_kind_code" json:"code"`
	Name      string `gorm:"size:64;not null" json:"name"`
	SortOrder int    `gorm:"column:sort_order" json:"order"`
}

// TableName overrides the table name for Option
func (Option) TableName() string {
	return "options"
}
