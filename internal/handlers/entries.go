package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/utils"
	"gorm.io/gorm"
)

// EntryHandler handles entry routes, including member-status updates and
// purchase items.
type EntryHandler struct {
	DB *gorm.DB
}

// ListEntries handles GET /api/entries
// @Summary List entries
// @Description List entries, newest first, optionally filtered by product and status
// @Tags Entries
// @Produce json
// @Param productId query string false "Filter by product ID"
// @Param status query int false "Filter by status code"
// @Success 200 {array} models.Entry
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /entries [get]
func (h *EntryHandler) ListEntries(c *fiber.Ctx) error {
	filter := services.EntryFilter{
		ProductID: c.Query("productId"),
		Status:    parseStatusQuery(c),
	}
	entries, err := services.ListEntries(h.DB, filter)
	if err != nil {
		return serviceErrorResponse(c, err, "listEntries")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// GetEntry handles GET /api/entries/:id
// @Summary Get an entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} models.Entry
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id} [get]
func (h *EntryHandler) GetEntry(c *fiber.Ctx) error {
	entry, err := services.GetEntry(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getEntry")
	}
	return c.Status(fiber.StatusOK).JSON(entry)
}

// CreateEntry handles POST /api/entries
// @Summary Create an entry
// @Description Create an entry for a product; primary members are seeded automatically
// @Tags Entries
// @Accept json
// @Produce json
// @Param body body services.EntryInput true "Entry fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries [post]
func (h *EntryHandler) CreateEntry(c *fiber.Ctx) error {
	var in services.EntryInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "entries.validation.input")
	}

	entry, err := services.CreateEntry(h.DB, in)
	if err != nil {
		return serviceErrorResponse(c, err, "createEntry")
	}
	return utils.MutationSuccessResponse(c, entry.ID, 1)
}

// UpdateEntry handles PUT /api/entries/:id
// @Summary Update an entry's schedule and label fields
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param body body services.EntryInput true "Entry fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *fiber.Ctx) error {
	var in services.EntryInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "entries.validation.input")
	}

	entry, err := services.UpdateEntry(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceErrorResponse(c, err, "updateEntry")
	}
	return utils.MutationSuccessResponse(c, entry.ID, 1)
}

// DeleteEntry handles DELETE /api/entries/:id
// @Summary Delete an entry and its purchase items
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.DeleteEntry(h.DB, id); err != nil {
		return serviceErrorResponse(c, err, "deleteEntry")
	}
	return utils.MutationSuccessResponse(c, id, 1)
}

// UpdateEntryMembers handles PUT /api/entries/:id/members
// @Summary Replace an entry's member statuses
// @Description Replaces the member list; the entry status is derived and persisted atomically
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param body body object true "Member status list"
// @Success 200 {object} models.Entry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id}/members [put]
func (h *EntryHandler) UpdateEntryMembers(c *fiber.Ctx) error {
	var body struct {
		Members types.FlexList[services.MemberStatusInput] `json:"purchaseMembers"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "entries.validation.input")
	}

	entry, err := services.UpdateEntryMembers(h.DB, c.Params("id"), body.Members.Slice(), time.Now())
	if err != nil {
		return serviceErrorResponse(c, err, "updateEntryMembers")
	}
	return c.Status(fiber.StatusOK).JSON(entry)
}

// ListPurchaseItems handles GET /api/entries/:id/items
// @Summary List the purchase items of an entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {array} models.PurchaseItem
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id}/items [get]
func (h *EntryHandler) ListPurchaseItems(c *fiber.Ctx) error {
	items, err := services.ListPurchaseItems(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "listPurchaseItems")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// ReplacePurchaseItems handles PUT /api/entries/:id/members/:memberId/items
// @Summary Replace one member's purchase items
// @Description Deletes the existing rows and inserts the replacement set in one transaction; zero-quantity lines are dropped
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param memberId path string true "Member ID"
// @Param body body object true "Purchase item list"
// @Success 200 {array} models.PurchaseItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id}/members/{memberId}/items [put]
func (h *EntryHandler) ReplacePurchaseItems(c *fiber.Ctx) error {
	var body struct {
		Items types.FlexList[services.PurchaseItemInput] `json:"purchaseItems"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "entries.validation.input")
	}

	items, err := services.ReplacePurchaseItems(h.DB, c.Params("id"), c.Params("memberId"), body.Items.Slice())
	if err != nil {
		return serviceErrorResponse(c, err, "replacePurchaseItems")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// GetEntrySummary handles GET /api/entries/:id/summary
// @Summary Roll up purchase quantities and amounts for an entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} services.EntrySummary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /entries/{id}/summary [get]
func (h *EntryHandler) GetEntrySummary(c *fiber.Ctx) error {
	summary, err := services.SummarizeEntry(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getEntrySummary")
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
