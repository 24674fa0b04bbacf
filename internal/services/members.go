package services

import (
	"errors"
	"strings"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// MemberInput is the create/update payload for a member.
type MemberInput struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	SortOrder   int    `json:"order"`
	PrimaryFlg  bool   `json:"primaryFlg"`
	DisplayFlag *bool  `json:"displayFlag"`
}

// ListMembers returns members ordered by their sort order.
func ListMembers(db *gorm.DB, includeHidden bool) ([]models.Member, error) {
	var members []models.Member
	if err := db.Order("sort_order, id").Find(&members).Error; err != nil {
		return nil, err
	}
	if includeHidden {
		return members, nil
	}
	visible := members[:0]
	for i := range members {
		if members[i].Visible() {
			visible = append(visible, members[i])
		}
	}
	return visible, nil
}

// GetMember returns one member or ErrNotFound.
func GetMember(db *gorm.DB, id string) (*models.Member, error) {
	var member models.Member
	if err := db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("member %q", id)
		}
		return nil, err
	}
	return &member, nil
}

// CreateMember validates the input, issues a sequence ID, and creates the
// member in one transaction.
func CreateMember(db *gorm.DB, in MemberInput) (*models.Member, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("member name is required")
	}

	var member models.Member
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := database.NextID(tx, database.SeqMember)
		if err != nil {
			return err
		}
		member = models.Member{
			ID:          id,
			Name:        in.Name,
			ShortName:   in.ShortName,
			SortOrder:   in.SortOrder,
			PrimaryFlg:  in.PrimaryFlg,
			DisplayFlag: in.DisplayFlag,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMember replaces the mutable fields of a member.
func UpdateMember(db *gorm.DB, id string, in MemberInput) (*models.Member, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("member name is required")
	}

	member, err := GetMember(db, id)
	if err != nil {
		return nil, err
	}

	member.Name = in.Name
	member.ShortName = in.ShortName
	member.SortOrder = in.SortOrder
	member.PrimaryFlg = in.PrimaryFlg
	member.DisplayFlag = in.DisplayFlag

	if err := db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember hard-deletes a member. Member snapshots embedded in existing
// entries keep their copied name; they are not rewritten.
func DeleteMember(db *gorm.DB, id string) error {
	result := db.Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("member %q", id)
	}
	return nil
}
