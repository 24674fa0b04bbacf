package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"gorm.io/gorm"
)

// OptionHandler serves the read-only option tables.
type OptionHandler struct {
	DB *gorm.DB
}

// ListOptions handles GET /api/options/:kind
// @Summary Get an option table
// @Description OP002 is the status table, OP003 the apply-method table
// @Tags Options
// @Produce json
// @Param kind path string true "Option table (OP002 or OP003)"
// @Success 200 {array} models.Option
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /options/{kind} [get]
func (h *OptionHandler) ListOptions(c *fiber.Ctx) error {
	options, err := services.ListOptions(h.DB, c.Params("kind"))
	if err != nil {
		return serviceErrorResponse(c, err, "listOptions")
	}
	return c.Status(fiber.StatusOK).JSON(options)
}
