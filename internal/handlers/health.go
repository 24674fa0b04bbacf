package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/config"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"gorm.io/gorm"
)

// HealthHandler serves the service health probe.
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// GetHealth handles GET /api/health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
