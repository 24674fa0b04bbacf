package models

// Sequence is a per-entity-type ID counter. Issuance is a transactional
// read-increment-write on the single row for the type, serialized by a
// row lock where the store supports one.
type Sequence struct {
	SeqType string `gorm:"primaryKey;size:16"`
	Seq     uint64 `gorm:"not null;default:0"`
}

// TableName overrides the table name for Sequence
func (Sequence) TableName() string {
	return "seq_management"
}
