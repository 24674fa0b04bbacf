package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"gorm.io/gorm"
)

// ReportHandler handles the read-only scan views: deadline alerts and the
// unified schedule.
type ReportHandler struct {
	DB *gorm.DB
}

// GetAlerts handles GET /api/alerts
// @Summary Upcoming deadline alerts
// @Description Counts entries approaching a deadline within 7 days, per current product plus one past-products bucket
// @Tags Reports
// @Produce json
// @Success 200 {object} services.AlertReport
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /alerts [get]
func (h *ReportHandler) GetAlerts(c *fiber.Ctx) error {
	report, err := services.DeadlineAlerts(h.DB, time.Now())
	if err != nil {
		return serviceErrorResponse(c, err, "getAlerts")
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// GetSchedule handles GET /api/schedule
// @Summary Unified schedule view
// @Description Flattens entry dates into labeled events within one month either side of today
// @Tags Reports
// @Produce json
// @Success 200 {object} services.ScheduleView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /schedule [get]
func (h *ReportHandler) GetSchedule(c *fiber.Ctx) error {
	view, err := services.Schedule(h.DB, time.Now())
	if err != nil {
		return serviceErrorResponse(c, err, "getSchedule")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}
