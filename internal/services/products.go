package services

import (
	"errors"
	"strings"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
	"gorm.io/gorm"
)

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name        string                                 `json:"name"`
	ShortName   string                                 `json:"shortName"`
	DisplayFlag *bool                                  `json:"displayFlag"`
	ReleaseDate types.FlexTime                         `json:"releaseDate"`
	Relations   types.FlexList[models.ProductRelation] `json:"productRelations"`
}

// ListProducts returns products ordered by ID. Hidden products are filtered
// out unless includeHidden is set.
func ListProducts(db *gorm.DB, includeHidden bool) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	if includeHidden {
		return products, nil
	}
	visible := products[:0]
	for i := range products {
		if products[i].Visible() {
			visible = append(visible, products[i])
		}
	}
	return visible, nil
}

// GetProduct returns one product or ErrNotFound.
func GetProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("product %q", id)
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct validates the input, issues a sequence ID, and creates the
// product in one transaction.
func CreateProduct(db *gorm.DB, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("product name is required")
	}

	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := database.NextID(tx, database.SeqProduct)
		if err != nil {
			return err
		}
		product = models.Product{
			ID:          id,
			Name:        in.Name,
			ShortName:   in.ShortName,
			DisplayFlag: in.DisplayFlag,
			ReleaseDate: in.ReleaseDate.Ptr(),
			Relations:   models.RelationList(in.Relations.Slice()),
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the mutable fields of a product.
func UpdateProduct(db *gorm.DB, id string, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("product name is required")
	}

	product, err := GetProduct(db, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.ShortName = in.ShortName
	product.DisplayFlag = in.DisplayFlag
	product.ReleaseDate = in.ReleaseDate.Ptr()
	product.Relations = models.RelationList(in.Relations.Slice())

	if err := db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct hard-deletes a product. The caller is responsible for any
// entries still referencing it; the tool tracks campaigns manually and
// never cascades.
func DeleteProduct(db *gorm.DB, id string) error {
	result := db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("product %q", id)
	}
	return nil
}
