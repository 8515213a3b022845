package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type BudgetServiceInterface interface {
	// TripBudget recomputes the trip total from scratch on every call:
	// find the trip's stops, then sum activity cost over that stop id set.
	// Missing stops or activities yield 0, never an error.
	TripBudget(ctx context.Context, tripID string) (float64, error)
}

type BudgetService struct {
	stopRepo     repositories.StopRepository
	activityRepo repositories.ActivityRepository
}

func NewBudgetService(
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
) BudgetServiceInterface {
	return &BudgetService{
		stopRepo:     stopRepo,
		activityRepo: activityRepo,
	}
}

func (s *BudgetService) TripBudget(ctx context.Context, tripID string) (float64, error) {
	stops, err := s.stopRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if len(stops) == 0 {
		return 0, nil
	}

	stopIDs := make([]string, 0, len(stops))
	for _, stop := range stops {
		stopIDs = append(stopIDs, stop.ID.String())
	}

	total, err := s.activityRepo.SumCostByStops(ctx, stopIDs)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	// Guard against non-finite values ever reaching the wire.
	return utils.SumCosts([]float64{total}), nil
}

// isNotFound reports whether err is the storage layer's missing-row error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
