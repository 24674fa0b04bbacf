package database

import (
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedOptions installs the read-only option tables. Existing rows are left
// untouched so locally edited labels survive restarts.
func SeedOptions(db *gorm.DB) error {
	options := []models.Option{
		// OP002: status code -> name -> order
		{Kind: models.OptionKindStatus, Code: int(models.StatusNotApplied), Name: "未応募", SortOrder: 1},
		{Kind: models.OptionKindStatus, Code: int(models.StatusApplying), Name: "応募中", SortOrder: 2},
		{Kind: models.OptionKindStatus, Code: int(models.StatusApplied), Name: "応募済", SortOrder: 3},
		{Kind: models.OptionKindStatus, Code: int(models.StatusWon), Name: "当選", SortOrder: 4},
		{Kind: models.OptionKindStatus, Code: int(models.StatusPurchased), Name: "購入済", SortOrder: 5},
		{Kind: models.OptionKindStatus, Code: int(models.StatusLost), Name: "落選", SortOrder: 6},
		{Kind: models.OptionKindStatus, Code: int(models.StatusExcluded), Name: "対象外", SortOrder: 7},

		// OP003: apply-method code -> name
		{Kind: models.OptionKindApplyMethod, Code: 1, Name: "WEB抽選", SortOrder: 1},
		{Kind: models.OptionKindApplyMethod, Code: 2, Name: "店頭抽選", SortOrder: 2},
		{Kind: models.OptionKindApplyMethod, Code: 3, Name: "先着販売", SortOrder: 3},
		{Kind: models.OptionKindApplyMethod, Code: 4, Name: "予約", SortOrder: 4},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&options).Error
}
