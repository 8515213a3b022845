package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

// GetTripBudget returns the bare {total} shape rather than the envelope.
func (b *BudgetController) GetTripBudget(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	total, err := b.budgetService.TripBudget(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.BudgetResponse{Total: total})
}
