package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

// HouseholdHandler serves the /api/households routes.
type HouseholdHandler struct {
	households service.HouseholdService
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(households service.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{households: households}
}

// Get handles GET /api/households/{id}.
//
// @Summary      Get household
// @Tags         Households
// @Produce      json
// @Param        id path string true "Household ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.HouseholdResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Security     BearerAuth
// @Router       /api/households/{id} [get]
func (h *HouseholdHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	household, err := h.households.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if household == nil {
		respondNotFound(c, "Household", id)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewHouseholdResponse(household))
}

// ListByUser handles GET /api/households/user/{userId}.
//
// @Summary      List a user's households
// @Tags         Households
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.HouseholdResponse}
// @Security     BearerAuth
// @Router       /api/households/user/{userId} [get]
func (h *HouseholdHandler) ListByUser(c *gin.Context) {
	h.list(c, c.Param("userId"))
}

// ListMine handles GET /api/households/mine.
//
// @Summary      List the caller's households
// @Tags         Households
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.HouseholdResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/households/mine [get]
func (h *HouseholdHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		NewResponseBuilder(c).Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	h.list(c, userID)
}

func (h *HouseholdHandler) list(c *gin.Context, userID string) {
	households, err := h.households.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewHouseholdResponses(households))
}

// Create handles POST /api/households. The caller becomes the household's admin.
//
// @Summary      Create household
// @Tags         Households
// @Accept       json
// @Produce      json
// @Param        request body dto.HouseholdRequest true "Household"
// @Success      201 {object} dto.SuccessResponse{data=dto.HouseholdResponse}
// @Header       201 {string} Location "URL of the new household"
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Security     BearerAuth
// @Router       /api/households [post]
func (h *HouseholdHandler) Create(c *gin.Context) {
	req, ok := bindRequest[dto.HouseholdRequest](c)
	if !ok {
		return
	}

	household, err := h.households.Create(c.Request.Context(), req.Name, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	audit(c, "household_created", "Household created", map[string]interface{}{
		"household_id": household.ID.Hex(),
	})
	respondCreated(c, resourcePath("/api/households", household.ID.Hex()), dto.NewHouseholdResponse(household))
}

// Update handles PUT /api/households/{id}.
//
// @Summary      Rename household
// @Tags         Households
// @Accept       json
// @Param        id path string true "Household ID"
// @Param        request body dto.HouseholdRequest true "Household"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Security     BearerAuth
// @Router       /api/households/{id} [put]
func (h *HouseholdHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.HouseholdRequest](c)
	if !ok {
		return
	}

	if err := h.households.Update(c.Request.Context(), id, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Delete handles DELETE /api/households/{id}.
//
// @Summary      Delete household
// @Tags         Households
// @Param        id path string true "Household ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Security     BearerAuth
// @Router       /api/households/{id} [delete]
func (h *HouseholdHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.households.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	audit(c, "household_deleted", "Household deleted", map[string]interface{}{"household_id": id.Hex()})
	respondNoContent(c)
}

// AddMember handles POST /api/households/{id}/members.
//
// @Summary      Add household member
// @Tags         Households
// @Accept       json
// @Param        id path string true "Household ID"
// @Param        request body dto.AddMemberRequest true "Member"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Failure      409 {object} dto.ErrorResponse "Already a member"
// @Security     BearerAuth
// @Router       /api/households/{id}/members [post]
func (h *HouseholdHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.AddMemberRequest](c)
	if !ok {
		return
	}

	if err := h.households.AddMember(c.Request.Context(), id, req.UserID, req.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// RemoveMember handles DELETE /api/households/{id}/members/{userId}.
//
// @Summary      Remove household member
// @Tags         Households
// @Param        id path string true "Household ID"
// @Param        userId path string true "User ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Household or member not found"
// @Security     BearerAuth
// @Router       /api/households/{id}/members/{userId} [delete]
func (h *HouseholdHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.households.RemoveMember(c.Request.Context(), id, c.Param("userId")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// UpdateMemberRole handles PUT /api/households/{id}/members/{userId}/role.
//
// @Summary      Change member role
// @Tags         Households
// @Accept       json
// @Param        id path string true "Household ID"
// @Param        userId path string true "User ID"
// @Param        request body dto.UpdateMemberRoleRequest true "Role"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Household or member not found"
// @Security     BearerAuth
// @Router       /api/households/{id}/members/{userId}/role [put]
func (h *HouseholdHandler) UpdateMemberRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.UpdateMemberRoleRequest](c)
	if !ok {
		return
	}

	if err := h.households.UpdateMemberRole(c.Request.Context(), id, c.Param("userId"), req.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}
