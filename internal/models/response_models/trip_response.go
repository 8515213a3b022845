package response_models

import (
	"time"

	"globetrotter/internal/models/db_models"
)

type TripResponse struct {
	ID          string         `json:"_id"`
	UserID      string         `json:"userId"`
	TripName    string         `json:"tripName"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	Description string         `json:"description"`
	CoverImage  *ImageResponse `json:"coverImage,omitempty"`
	CreatedAt   int64          `json:"createdAt"`
	UpdatedAt   int64          `json:"updatedAt"`
}

func BuildTripResponse(trip *db_models.Trip) TripResponse {
	return TripResponse{
		ID:          trip.ID.String(),
		UserID:      trip.UserID.String(),
		TripName:    trip.TripName,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Description: trip.Description,
		CoverImage:  BuildImageResponse(trip.CoverImage),
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
}

func BuildTripResponses(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, BuildTripResponse(&trips[i]))
	}
	return out
}
