package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/utils"
)

// serviceErrorResponse translates a service error into the response
// envelope: validation rejections map to 400, missing references to 404,
// everything else (store failures) to a generic 500.
func serviceErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ValidationErrorResponse(c, err.Error(), errorType)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// includeHidden reads the ?all=true switch that adds hidden rows to lists.
func includeHidden(c *fiber.Ctx) bool {
	return c.QueryBool("all", false)
}

// parseStatusQuery reads an optional ?status= filter. Empty or garbage
// values filter nothing.
func parseStatusQuery(c *fiber.Ctx) *models.Status {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	status := models.Status(code)
	if !status.Valid() {
		return nil
	}
	return &status
}
