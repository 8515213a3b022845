package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CreateTripInput struct {
	UserID      string
	TripName    string
	StartDate   string
	EndDate     string
	Description string
	CoverImage  *db_models.Image
}

// UpdateTripInput carries a partial update; nil fields keep their stored
// value. Date ordering is re-validated against the merged result.
type UpdateTripInput struct {
	TripName    *string
	StartDate   *string
	EndDate     *string
	Description *string
	CoverImage  *db_models.Image
}

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, input CreateTripInput) (*response_models.TripResponse, error)
	ListTripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID string, input UpdateTripInput) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type TripService struct {
	tripRepo     repositories.TripRepository
	stopRepo     repositories.StopRepository
	activityRepo repositories.ActivityRepository
	logService   ActivityLogServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
	logService ActivityLogServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:     tripRepo,
		stopRepo:     stopRepo,
		activityRepo: activityRepo,
		logService:   logService,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, input CreateTripInput) (*response_models.TripResponse, error) {
	v := &utils.ValidationError{}

	userID, err := uuid.Parse(input.UserID)
	if input.UserID == "" {
		v.Add("User ID is required")
	} else if err != nil {
		v.Add("Invalid user ID format")
	}

	name := strings.TrimSpace(input.TripName)
	switch {
	case name == "":
		v.Add("Trip name is required")
	case len(name) < 3:
		v.Add("Trip name must be at least 3 characters long")
	case len(name) > 100:
		v.Add("Trip name cannot exceed 100 characters")
	}

	var start, end = validateDateRange(v, input.StartDate, input.EndDate)

	if len(input.Description) > 500 {
		v.Add("Description cannot exceed 500 characters")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		UserID:      userID,
		TripName:    name,
		StartDate:   start,
		EndDate:     end,
		Description: input.Description,
	}
	if input.CoverImage != nil {
		trip.CoverImage = *input.CoverImage
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, fmt.Errorf("creating trip: %w", err)
	}

	s.logService.Record(ctx, userID, db_models.ActionCreatedTrip, map[string]interface{}{
		"tripId":    trip.ID.String(),
		"tripName":  trip.TripName,
		"startDate": trip.StartDate,
		"endDate":   trip.EndDate,
	})

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (s *TripService) ListTripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripResponses(trips), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripID string, input UpdateTripInput) (*response_models.TripResponse, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	v := &utils.ValidationError{}

	if input.TripName != nil {
		name := strings.TrimSpace(*input.TripName)
		switch {
		case len(name) < 3:
			v.Add("Trip name must be at least 3 characters long")
		case len(name) > 100:
			v.Add("Trip name cannot exceed 100 characters")
		default:
			trip.TripName = name
		}
	}

	if input.StartDate != nil {
		t, err := utils.ParseDate(*input.StartDate)
		if err != nil {
			v.Add("Invalid start date")
		} else {
			trip.StartDate = t
		}
	}
	if input.EndDate != nil {
		t, err := utils.ParseDate(*input.EndDate)
		if err != nil {
			v.Add("Invalid end date")
		} else {
			trip.EndDate = t
		}
	}
	if trip.EndDate.Before(trip.StartDate) {
		v.Add("End date must be after start date")
	}

	if input.Description != nil {
		if len(*input.Description) > 500 {
			v.Add("Description cannot exceed 500 characters")
		} else {
			trip.Description = *input.Description
		}
	}
	if input.CoverImage != nil {
		trip.CoverImage = *input.CoverImage
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("updating trip: %w", err)
	}

	s.logService.Record(ctx, trip.UserID, db_models.ActionUpdatedTrip, map[string]interface{}{
		"tripId":   trip.ID.String(),
		"tripName": trip.TripName,
	})

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

// DeleteTrip removes a trip and everything under it. The trip row goes first,
// then stops are collected and their activities deleted, then the stops
// themselves. The sequence is not transactional: a failure after the trip row
// is gone leaves orphaned descendants behind and surfaces ErrPartialCascade
// wrapping the failing sub-step.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if _, err := uuid.Parse(tripID); err != nil {
		return utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	if err := s.tripRepo.DeleteByID(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}

	stops, err := s.stopRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("%w: listing stops for trip %s: %v", utils.ErrPartialCascade, tripID, err)
	}

	for _, stop := range stops {
		if err := s.activityRepo.DeleteByStop(ctx, stop.ID.String()); err != nil {
			return fmt.Errorf("%w: deleting activities for stop %s: %v", utils.ErrPartialCascade, stop.ID, err)
		}
	}
	if err := s.stopRepo.DeleteByTrip(ctx, tripID); err != nil {
		return fmt.Errorf("%w: deleting stops for trip %s: %v", utils.ErrPartialCascade, tripID, err)
	}

	s.logService.Record(ctx, trip.UserID, db_models.ActionDeletedTrip, map[string]interface{}{
		"tripId":   tripID,
		"tripName": trip.TripName,
	})

	return nil
}

// validateDateRange parses a required start/end pair, collecting every
// violation into v. Ordering is only checked when both dates parsed.
func validateDateRange(v *utils.ValidationError, startStr, endStr string) (start, end time.Time) {
	var startOK, endOK bool

	if strings.TrimSpace(startStr) == "" {
		v.Add("Start date is required")
	} else if t, err := utils.ParseDate(startStr); err != nil {
		v.Add("Invalid start date")
	} else {
		start, startOK = t, true
	}

	if strings.TrimSpace(endStr) == "" {
		v.Add("End date is required")
	} else if t, err := utils.ParseDate(endStr); err != nil {
		v.Add("Invalid end date")
	} else {
		end, endOK = t, true
	}

	if startOK && endOK && end.Before(start) {
		v.Add("End date must be after start date")
	}
	return start, end
}
