package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/utils"
	"gorm.io/gorm"
)

// ShopHandler handles shop routes
type ShopHandler struct {
	DB *gorm.DB
}

// ListShops handles GET /api/shops
// @Summary List shops
// @Tags Shops
// @Produce json
// @Param all query bool false "Include hidden shops"
// @Success 200 {array} models.Shop
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *fiber.Ctx) error {
	shops, err := services.ListShops(h.DB, includeHidden(c))
	if err != nil {
		return serviceErrorResponse(c, err, "listShops")
	}
	return c.Status(fiber.StatusOK).JSON(shops)
}

// GetShop handles GET /api/shops/:id
// @Summary Get a shop
// @Tags Shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} models.Shop
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shops/{id} [get]
func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	shop, err := services.GetShop(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getShop")
	}
	return c.Status(fiber.StatusOK).JSON(shop)
}

// CreateShop handles POST /api/shops
// @Summary Create a shop
// @Tags Shops
// @Accept json
// @Produce json
// @Param body body services.ShopInput true "Shop fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /shops [post]
func (h *ShopHandler) CreateShop(c *fiber.Ctx) error {
	var in services.ShopInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "shops.validation.input")
	}

	shop, err := services.CreateShop(h.DB, in)
	if err != nil {
		return serviceErrorResponse(c, err, "createShop")
	}
	return utils.MutationSuccessResponse(c, shop.ID, 1)
}

// UpdateShop handles PUT /api/shops/:id
// @Summary Update a shop
// @Tags Shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param body body services.ShopInput true "Shop fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shops/{id} [put]
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	var in services.ShopInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "shops.validation.input")
	}

	shop, err := services.UpdateShop(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceErrorResponse(c, err, "updateShop")
	}
	return utils.MutationSuccessResponse(c, shop.ID, 1)
}

// DeleteShop handles DELETE /api/shops/:id
// @Summary Delete a shop
// @Tags Shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shops/{id} [delete]
func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.DeleteShop(h.DB, id); err != nil {
		return serviceErrorResponse(c, err, "deleteShop")
	}
	return utils.MutationSuccessResponse(c, id, 1)
}
