package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityLogController struct {
	logService services.ActivityLogServiceInterface
}

func NewActivityLogController(logService services.ActivityLogServiceInterface) *ActivityLogController {
	return &ActivityLogController{logService: logService}
}

func (a *ActivityLogController) GetRecentByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	logs, err := a.logService.RecentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, logs, "Activities fetched successfully")
}
