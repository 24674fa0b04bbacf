package database

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence types. Each type has its own counter row and ID format.
const (
	SeqMember  = "member"  // M001
	SeqProduct = "product" // P0001
	SeqShop    = "shop"    // S0001
	SeqEntry   = "entry"   // plain integer string
)

// NextID issues the next formatted ID for the given sequence type.
// Must run inside a transaction: the counter row is locked for update so
// two concurrent creations never receive the same ID. A missing counter
// row starts the sequence at 1.
func NextID(tx *gorm.DB, seqType string) (string, error) {
	var seq models.Sequence
	err := lockForUpdate(tx).Where("seq_type = ?", seqType).First(&seq).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("failed to read sequence %q: %w", seqType, err)
		}
		seq = models.Sequence{SeqType: seqType}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("failed to create sequence %q: %w", seqType, err)
		}
	}

	seq.Seq++
	if err := tx.Model(&models.Sequence{}).
		Where("seq_type = ?", seqType).
		Update("seq", seq.Seq).Error; err != nil {
		return "", fmt.Errorf("failed to update sequence %q: %w", seqType, err)
	}

	return FormatID(seqType, seq.Seq), nil
}

// FormatID renders a counter value as the type-prefixed ID.
func FormatID(seqType string, n uint64) string {
	switch seqType {
	case SeqMember:
		return fmt.Sprintf("M%03d", n)
	case SeqProduct:
		return fmt.Sprintf("P%04d", n)
	case SeqShop:
		return fmt.Sprintf("S%04d", n)
	default:
		return strconv.FormatUint(n, 10)
	}
}

// lockForUpdate adds a row lock where the dialect supports one. SQLite has
// no row locks; its writers serialize on the database lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
