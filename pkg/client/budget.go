package client

import (
	"context"

	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

// RecomputeBudget mirrors the server's budget aggregation on already-fetched
// data, so the UI can show a total without another round trip: sum the cost
// of every activity under every stop of the trip, treating anything
// non-finite as 0.
func RecomputeBudget(stops []response_models.StopResponse, activitiesByStop map[string][]response_models.ActivityResponse) float64 {
	var costs []float64
	for _, stop := range stops {
		for _, activity := range activitiesByStop[stop.ID] {
			costs = append(costs, activity.Cost)
		}
	}
	return utils.SumCosts(costs)
}

// FetchTripBudget loads a trip's stops and activities and recomputes the
// total locally. Stops that fail to load (e.g. dangling references) simply
// contribute nothing.
func (c *Client) FetchTripBudget(ctx context.Context, tripID string) (float64, error) {
	stops, err := c.StopsByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}

	activitiesByStop := make(map[string][]response_models.ActivityResponse, len(stops))
	for _, stop := range stops {
		activities, err := c.ActivitiesByStop(ctx, stop.ID)
		if err != nil {
			continue
		}
		activitiesByStop[stop.ID] = activities
	}

	return RecomputeBudget(stops, activitiesByStop), nil
}
