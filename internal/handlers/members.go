package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/utils"
	"gorm.io/gorm"
)

// MemberHandler handles member routes
type MemberHandler struct {
	DB *gorm.DB
}

// ListMembers handles GET /api/members
// @Summary List members
// @Tags Members
// @Produce json
// @Param all query bool false "Include hidden members"
// @Success 200 {array} models.Member
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	members, err := services.ListMembers(h.DB, includeHidden(c))
	if err != nil {
		return serviceErrorResponse(c, err, "listMembers")
	}
	return c.Status(fiber.StatusOK).JSON(members)
}

// GetMember handles GET /api/members/:id
// @Summary Get a member
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.Member
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	member, err := services.GetMember(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getMember")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// CreateMember handles POST /api/members
// @Summary Create a member
// @Tags Members
// @Accept json
// @Produce json
// @Param body body services.MemberInput true "Member fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var in services.MemberInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "members.validation.input")
	}

	member, err := services.CreateMember(h.DB, in)
	if err != nil {
		return serviceErrorResponse(c, err, "createMember")
	}
	return utils.MutationSuccessResponse(c, member.ID, 1)
}

// UpdateMember handles PUT /api/members/:id
// @Summary Update a member
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param body body services.MemberInput true "Member fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	var in services.MemberInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input", "members.validation.input")
	}

	member, err := services.UpdateMember(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceErrorResponse(c, err, "updateMember")
	}
	return utils.MutationSuccessResponse(c, member.ID, 1)
}

// DeleteMember handles DELETE /api/members/:id
// @Summary Delete a member
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.DeleteMember(h.DB, id); err != nil {
		return serviceErrorResponse(c, err, "deleteMember")
	}
	return utils.MutationSuccessResponse(c, id, 1)
}
