package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
)

// ListUnits handles GET /api/units.
//
// @Summary      List measurement units
// @Description  Every unit with its numeric value, name and display abbreviation.
// @Tags         Units
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.UnitResponse}
// @Router       /api/units [get]
func ListUnits(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewUnitResponses())
}
