package services

import (
	"errors"
	"strings"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShopInput is the create/update payload for a shop.
type ShopInput struct {
	Name        string              `json:"name"`
	ShortName   string              `json:"shortName"`
	SortOrder   int                 `json:"order"`
	DisplayFlag *bool               `json:"displayFlag"`
	Address     string              `json:"address"`
	Defaults    models.ShopDefaults `json:"defaults"`
}

// ListShops returns shops ordered by their sort order.
func ListShops(db *gorm.DB, includeHidden bool) ([]models.Shop, error) {
	var shops []models.Shop
	if err := db.Order("sort_order, id").Find(&shops).Error; err != nil {
		return nil, err
	}
	if includeHidden {
		return shops, nil
	}
	visible := shops[:0]
	for i := range shops {
		if shops[i].Visible() {
			visible = append(visible, shops[i])
		}
	}
	return visible, nil
}

// GetShop returns one shop or ErrNotFound.
func GetShop(db *gorm.DB, id string) (*models.Shop, error) {
	var shop models.Shop
	if err := db.First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("shop %q", id)
		}
		return nil, err
	}
	return &shop, nil
}

// CreateShop validates the input, issues a sequence ID, and creates the
// shop in one transaction.
func CreateShop(db *gorm.DB, in ShopInput) (*models.Shop, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("shop name is required")
	}

	var shop models.Shop
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := database.NextID(tx, database.SeqShop)
		if err != nil {
			return err
		}
		shop = models.Shop{
			ID:          id,
			Name:        in.Name,
			ShortName:   in.ShortName,
			SortOrder:   in.SortOrder,
			DisplayFlag: in.DisplayFlag,
			Address:     in.Address,
			Defaults:    datatypes.NewJSONType(in.Defaults),
		}
		return tx.Create(&shop).Error
	})
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// UpdateShop replaces the mutable fields of a shop.
func UpdateShop(db *gorm.DB, id string, in ShopInput) (*models.Shop, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("shop name is required")
	}

	shop, err := GetShop(db, id)
	if err != nil {
		return nil, err
	}

	shop.Name = in.Name
	shop.ShortName = in.ShortName
	shop.SortOrder = in.SortOrder
	shop.DisplayFlag = in.DisplayFlag
	shop.Address = in.Address
	shop.Defaults = datatypes.NewJSONType(in.Defaults)

	if err := db.Save(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

// DeleteShop hard-deletes a shop.
func DeleteShop(db *gorm.DB, id string) error {
	result := db.Delete(&models.Shop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("shop %q", id)
	}
	return nil
}
