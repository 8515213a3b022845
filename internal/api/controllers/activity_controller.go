package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

func (a *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, activity, "Activity created successfully")
}

func (a *ActivityController) GetActivitiesByStop(c *gin.Context) {
	stopID := c.Param("stopId")
	if stopID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Stop ID is required")
		return
	}

	activities, err := a.activityService.ListActivitiesByStop(c.Request.Context(), stopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, activities, "Activities fetched successfully")
}

func (a *ActivityController) DeleteActivity(c *gin.Context) {
	activityID := c.Param("activityId")
	if activityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	if err := a.activityService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Activity deleted successfully")
}
