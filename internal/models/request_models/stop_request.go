package request_models

type CreateStopRequest struct {
	TripID    string `json:"tripId"`
	City      string `json:"city"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
