package response_models

import (
	"time"

	"globetrotter/internal/models/db_models"
)

type ActivityResponse struct {
	ID           string    `json:"_id"`
	StopID       string    `json:"stopId"`
	ActivityName string    `json:"activityName"`
	Cost         float64   `json:"cost"`
	Day          time.Time `json:"day"`
}

func BuildActivityResponse(activity *db_models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           activity.ID.String(),
		StopID:       activity.StopID.String(),
		ActivityName: activity.ActivityName,
		Cost:         activity.Cost,
		Day:          activity.Day,
	}
}

func BuildActivityResponses(activities []db_models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, BuildActivityResponse(&activities[i]))
	}
	return out
}

type BudgetResponse struct {
	Total float64 `json:"total"`
}
