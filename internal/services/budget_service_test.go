package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/services"
)

func TestBudgetService_SumsAcrossStops(t *testing.T) {
	stop1, stop2 := uuid.New(), uuid.New()

	stopRepo := &mockStopRepo{
		findByTrip: func(_ context.Context, _ string) ([]db_models.Stop, error) {
			s1 := db_models.Stop{City: "Rome"}
			s1.ID = stop1
			s2 := db_models.Stop{City: "Florence"}
			s2.ID = stop2
			return []db_models.Stop{s1, s2}, nil
		},
	}
	activityRepo := &mockActivityRepo{
		sumCostByStops: func(_ context.Context, stopIDs []string) (float64, error) {
			assert.ElementsMatch(t, []string{stop1.String(), stop2.String()}, stopIDs)
			return 75, nil
		},
	}
	svc := services.NewBudgetService(stopRepo, activityRepo)

	total, err := svc.TripBudget(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Equal(t, 75.0, total)
}

func TestBudgetService_NoStopsIsZero(t *testing.T) {
	sumCalled := false
	activityRepo := &mockActivityRepo{
		sumCostByStops: func(_ context.Context, _ []string) (float64, error) {
			sumCalled = true
			return 0, nil
		},
	}
	svc := services.NewBudgetService(&mockStopRepo{}, activityRepo)

	total, err := svc.TripBudget(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.False(t, sumCalled, "no stops means no aggregation query")
}

func TestBudgetService_NoActivitiesIsZero(t *testing.T) {
	stopRepo := &mockStopRepo{
		findByTrip: func(_ context.Context, _ string) ([]db_models.Stop, error) {
			s := db_models.Stop{}
			s.ID = uuid.New()
			return []db_models.Stop{s}, nil
		},
	}
	svc := services.NewBudgetService(stopRepo, &mockActivityRepo{})

	total, err := svc.TripBudget(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestBudgetService_NonFiniteTotalClampedToZero(t *testing.T) {
	stopRepo := &mockStopRepo{
		findByTrip: func(_ context.Context, _ string) ([]db_models.Stop, error) {
			s := db_models.Stop{}
			s.ID = uuid.New()
			return []db_models.Stop{s}, nil
		},
	}
	activityRepo := &mockActivityRepo{
		sumCostByStops: func(_ context.Context, _ []string) (float64, error) {
			return math.NaN(), nil
		},
	}
	svc := services.NewBudgetService(stopRepo, activityRepo)

	total, err := svc.TripBudget(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Zero(t, total, "NaN must never propagate to the wire")
}

func TestBudgetService_DanglingTripIsZero(t *testing.T) {
	// A trip id that never existed behaves exactly like a trip without stops.
	svc := services.NewBudgetService(&mockStopRepo{}, &mockActivityRepo{})

	total, err := svc.TripBudget(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Zero(t, total)
}
