package response_models

import (
	"time"

	"globetrotter/internal/models/db_models"
)

type StopResponse struct {
	ID        string    `json:"_id"`
	TripID    string    `json:"tripId"`
	City      string    `json:"city"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

func BuildStopResponse(stop *db_models.Stop) StopResponse {
	return StopResponse{
		ID:        stop.ID.String(),
		TripID:    stop.TripID.String(),
		City:      stop.City,
		StartDate: stop.StartDate,
		EndDate:   stop.EndDate,
	}
}

func BuildStopResponses(stops []db_models.Stop) []StopResponse {
	out := make([]StopResponse, 0, len(stops))
	for i := range stops {
		out = append(out, BuildStopResponse(&stops[i]))
	}
	return out
}
