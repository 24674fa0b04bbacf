package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/utils"
	"gorm.io/gorm"
)

// ProductHandler handles product routes
type ProductHandler struct {
	DB *gorm.DB
}

// ListProducts handles GET /api/products
// @Summary List products
// @Description List products ordered by ID; hidden products need ?all=true
// @Tags Products
// @Accept json
// @Produce json
// @Param all query bool false "Include hidden products"
// @Success 200 {array} models.Product
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := services.ListProducts(h.DB, includeHidden(c))
	if err != nil {
		return serviceErrorResponse(c, err, "listProducts")
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProduct handles GET /api/products/:id
// @Summary Get a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := services.GetProduct(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getProduct")
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// CreateProduct handles POST /api/products
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param body body services.ProductInput true "Product fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "products.validation.input")
	}

	product, err := services.CreateProduct(h.DB, in)
	if err != nil {
		return serviceErrorResponse(c, err, "createProduct")
	}
	return utils.MutationSuccessResponse(c, product.ID, 1)
}

// UpdateProduct handles PUT /api/products/:id
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body services.ProductInput true "Product fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "products.validation.input")
	}

	product, err := services.UpdateProduct(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceErrorResponse(c, err, "updateProduct")
	}
	return utils.MutationSuccessResponse(c, product.ID, 1)
}

// DeleteProduct handles DELETE /api/products/:id
// @Summary Delete a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.DeleteProduct(h.DB, id); err != nil {
		return serviceErrorResponse(c, err, "deleteProduct")
	}
	return utils.MutationSuccessResponse(c, id, 1)
}
