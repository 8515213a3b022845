package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{stopService: stopService}
}

func (s *StopController) CreateStop(c *gin.Context) {
	var req request_models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.CreateStop(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, stop, "Stop created successfully")
}

func (s *StopController) GetStopsByTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	stops, err := s.stopService.ListStopsByTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, stops, "Stops fetched successfully")
}

func (s *StopController) DeleteStop(c *gin.Context) {
	stopID := c.Param("stopId")
	if stopID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Stop ID is required")
		return
	}

	if err := s.stopService.DeleteStop(c.Request.Context(), stopID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Stop and associated activities deleted successfully")
}
