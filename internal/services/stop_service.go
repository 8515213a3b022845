package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type StopServiceInterface interface {
	CreateStop(ctx context.Context, req request_models.CreateStopRequest) (*response_models.StopResponse, error)
	ListStopsByTrip(ctx context.Context, tripID string) ([]response_models.StopResponse, error)
	DeleteStop(ctx context.Context, stopID string) error
}

type StopService struct {
	stopRepo     repositories.StopRepository
	activityRepo repositories.ActivityRepository
	tripRepo     repositories.TripRepository
	logService   ActivityLogServiceInterface
}

func NewStopService(
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
	tripRepo repositories.TripRepository,
	logService ActivityLogServiceInterface,
) StopServiceInterface {
	return &StopService{
		stopRepo:     stopRepo,
		activityRepo: activityRepo,
		tripRepo:     tripRepo,
		logService:   logService,
	}
}

// CreateStop inserts a stop referencing the given trip. The trip's existence
// is not verified; a dangling reference is accepted and simply contributes
// nothing to budgets or cascades.
func (s *StopService) CreateStop(ctx context.Context, req request_models.CreateStopRequest) (*response_models.StopResponse, error) {
	v := &utils.ValidationError{}

	tripID, err := uuid.Parse(req.TripID)
	if req.TripID == "" {
		v.Add("Trip ID is required")
	} else if err != nil {
		v.Add("Invalid trip ID format")
	}

	if strings.TrimSpace(req.City) == "" {
		v.Add("City is required")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	stop := &db_models.Stop{
		TripID:    tripID,
		City:      strings.TrimSpace(req.City),
		StartDate: utils.ParseDateOrNow(req.StartDate),
		EndDate:   utils.ParseDateOrNow(req.EndDate),
	}

	if err := s.stopRepo.Insert(ctx, stop); err != nil {
		return nil, fmt.Errorf("creating stop: %w", err)
	}

	s.recordStopAction(ctx, stop, db_models.ActionCreatedStop)

	resp := response_models.BuildStopResponse(stop)
	return &resp, nil
}

func (s *StopService) ListStopsByTrip(ctx context.Context, tripID string) ([]response_models.StopResponse, error) {
	stops, err := s.stopRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildStopResponses(stops), nil
}

// DeleteStop removes the stop row first and its activities second; same
// partial-failure caveat as trip deletion.
func (s *StopService) DeleteStop(ctx context.Context, stopID string) error {
	if _, err := uuid.Parse(stopID); err != nil {
		return utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.FindByID(ctx, stopID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil {
		return utils.ErrStopNotFound
	}

	if err := s.stopRepo.DeleteByID(ctx, stopID); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.activityRepo.DeleteByStop(ctx, stopID); err != nil {
		return fmt.Errorf("%w: deleting activities for stop %s: %v", utils.ErrPartialCascade, stopID, err)
	}

	s.recordStopAction(ctx, stop, db_models.ActionDeletedStop)

	return nil
}

// recordStopAction attributes a stop event to the owning trip's user. A
// dangling trip reference leaves nobody to attribute the event to, so it is
// skipped; audit writes stay best-effort throughout.
func (s *StopService) recordStopAction(ctx context.Context, stop *db_models.Stop, action string) {
	trip, err := s.tripRepo.FindByID(ctx, stop.TripID.String())
	if err != nil || trip == nil {
		return
	}
	s.logService.Record(ctx, trip.UserID, action, map[string]interface{}{
		"stopId": stop.ID.String(),
		"tripId": stop.TripID.String(),
		"city":   stop.City,
	})
}
