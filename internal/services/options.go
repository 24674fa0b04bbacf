package services

import (
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// ListOptions returns one option table (OP002 or OP003) in display order.
// The tables are reference data: loaded per request and passed to callers,
// never fetched inside the engines.
func ListOptions(db *gorm.DB, kind string) ([]models.Option, error) {
	if kind != models.OptionKindStatus && kind != models.OptionKindApplyMethod {
		return nil, notFoundf("option table %q", kind)
	}
	var options []models.Option
	if err := db.Where("kind = ?", kind).Order("sort_order").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
