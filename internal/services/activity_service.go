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

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error)
	ListActivitiesByStop(ctx context.Context, stopID string) ([]response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, activityID string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	stopRepo     repositories.StopRepository
	tripRepo     repositories.TripRepository
	logService   ActivityLogServiceInterface
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	stopRepo repositories.StopRepository,
	tripRepo repositories.TripRepository,
	logService ActivityLogServiceInterface,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		stopRepo:     stopRepo,
		tripRepo:     tripRepo,
		logService:   logService,
	}
}

// CreateActivity inserts an activity under a stop. As with stops, the parent
// reference is not checked for existence.
func (s *ActivityService) CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error) {
	v := &utils.ValidationError{}

	stopID, err := uuid.Parse(req.StopID)
	if req.StopID == "" {
		v.Add("Stop ID is required")
	} else if err != nil {
		v.Add("Invalid stop ID format")
	}

	if strings.TrimSpace(req.ActivityName) == "" {
		v.Add("Activity name is required")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	activity := &db_models.Activity{
		StopID:       stopID,
		ActivityName: strings.TrimSpace(req.ActivityName),
		Cost:         float64(req.Cost),
		Day:          utils.ParseDateOrNow(req.Day),
	}

	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	s.recordActivityAction(ctx, activity, db_models.ActionCreatedActivity)

	resp := response_models.BuildActivityResponse(activity)
	return &resp, nil
}

func (s *ActivityService) ListActivitiesByStop(ctx context.Context, stopID string) ([]response_models.ActivityResponse, error) {
	activities, err := s.activityRepo.FindByStop(ctx, stopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildActivityResponses(activities), nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, activityID string) error {
	if _, err := uuid.Parse(activityID); err != nil {
		return utils.ErrInvalidInput
	}

	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	err = s.activityRepo.DeleteByID(ctx, activityID)
	if err == nil {
		s.recordActivityAction(ctx, activity, db_models.ActionDeletedActivity)
		return nil
	}
	if isNotFound(err) {
		return utils.ErrActivityNotFound
	}
	return utils.ErrDatabaseError
}

// recordActivityAction walks from the activity up through its stop and trip
// to find the owning user.
// A dangling parent anywhere along the chain means the event goes
// unattributed and is skipped.
func (s *ActivityService) recordActivityAction(ctx context.Context, activity *db_models.Activity, action string) {
	stop, err := s.stopRepo.FindByID(ctx, activity.StopID.String())
	if err != nil || stop == nil {
		return
	}
	trip, err := s.tripRepo.FindByID(ctx, stop.TripID.String())
	if err != nil || trip == nil {
		return
	}
	s.logService.Record(ctx, trip.UserID, action, map[string]interface{}{
		"activityId":   activity.ID.String(),
		"stopId":       activity.StopID.String(),
		"activityName": activity.ActivityName,
		"cost":         activity.Cost,
	})
}
