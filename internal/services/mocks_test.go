package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

// Hand-written test doubles: each method is a function field, set only the
// ones a test needs. Nil fields fall back to a no-op success.

type mockTripRepo struct {
	insert     func(ctx context.Context, trip *db_models.Trip) error
	findByID   func(ctx context.Context, id string) (*db_models.Trip, error)
	findByUser func(ctx context.Context, userID string) ([]db_models.Trip, error)
	update     func(ctx context.Context, trip *db_models.Trip) error
	deleteByID func(ctx context.Context, id string) error
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

func (m *mockTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, trip)
}

func (m *mockTripRepo) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(ctx, id)
}

func (m *mockTripRepo) FindByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	if m.findByUser == nil {
		return nil, nil
	}
	return m.findByUser(ctx, userID)
}

func (m *mockTripRepo) Update(ctx context.Context, trip *db_models.Trip) error {
	if m.update == nil {
		return nil
	}
	return m.update(ctx, trip)
}

func (m *mockTripRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByID == nil {
		return nil
	}
	return m.deleteByID(ctx, id)
}

type mockStopRepo struct {
	insert       func(ctx context.Context, stop *db_models.Stop) error
	findByID     func(ctx context.Context, id string) (*db_models.Stop, error)
	findByTrip   func(ctx context.Context, tripID string) ([]db_models.Stop, error)
	deleteByID   func(ctx context.Context, id string) error
	deleteByTrip func(ctx context.Context, tripID string) error
}

var _ repositories.StopRepository = (*mockStopRepo)(nil)

func (m *mockStopRepo) Insert(ctx context.Context, stop *db_models.Stop) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, stop)
}

func (m *mockStopRepo) FindByID(ctx context.Context, id string) (*db_models.Stop, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(ctx, id)
}

func (m *mockStopRepo) FindByTrip(ctx context.Context, tripID string) ([]db_models.Stop, error) {
	if m.findByTrip == nil {
		return nil, nil
	}
	return m.findByTrip(ctx, tripID)
}

func (m *mockStopRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByID == nil {
		return nil
	}
	return m.deleteByID(ctx, id)
}

func (m *mockStopRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	if m.deleteByTrip == nil {
		return nil
	}
	return m.deleteByTrip(ctx, tripID)
}

type mockActivityRepo struct {
	insert         func(ctx context.Context, activity *db_models.Activity) error
	findByID       func(ctx context.Context, id string) (*db_models.Activity, error)
	findByStop     func(ctx context.Context, stopID string) ([]db_models.Activity, error)
	deleteByID     func(ctx context.Context, id string) error
	deleteByStop   func(ctx context.Context, stopID string) error
	sumCostByStops func(ctx context.Context, stopIDs []string) (float64, error)
}

var _ repositories.ActivityRepository = (*mockActivityRepo)(nil)

func (m *mockActivityRepo) Insert(ctx context.Context, activity *db_models.Activity) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, activity)
}

func (m *mockActivityRepo) FindByID(ctx context.Context, id string) (*db_models.Activity, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(ctx, id)
}

func (m *mockActivityRepo) FindByStop(ctx context.Context, stopID string) ([]db_models.Activity, error) {
	if m.findByStop == nil {
		return nil, nil
	}
	return m.findByStop(ctx, stopID)
}

func (m *mockActivityRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByID == nil {
		return nil
	}
	return m.deleteByID(ctx, id)
}

func (m *mockActivityRepo) DeleteByStop(ctx context.Context, stopID string) error {
	if m.deleteByStop == nil {
		return nil
	}
	return m.deleteByStop(ctx, stopID)
}

func (m *mockActivityRepo) SumCostByStops(ctx context.Context, stopIDs []string) (float64, error) {
	if m.sumCostByStops == nil {
		return 0, nil
	}
	return m.sumCostByStops(ctx, stopIDs)
}

// recordingLogService captures audit actions so tests can assert what was
// (not) logged without a database.
type recordingLogService struct {
	mu      sync.Mutex
	actions []string
}

var _ services.ActivityLogServiceInterface = (*recordingLogService)(nil)

func (r *recordingLogService) Record(_ context.Context, _ uuid.UUID, action string, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
}

func (r *recordingLogService) RecentByUser(context.Context, string, int) ([]response_models.ActivityLogResponse, error) {
	return nil, nil
}

func (r *recordingLogService) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
