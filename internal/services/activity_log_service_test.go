package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

type mockLogRepo struct {
	insert           func(ctx context.Context, entry *db_models.ActivityLog) error
	findRecentByUser func(ctx context.Context, userID string, limit int) ([]db_models.ActivityLog, error)
}

var _ repositories.ActivityLogRepository = (*mockLogRepo)(nil)

func (m *mockLogRepo) Insert(ctx context.Context, entry *db_models.ActivityLog) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, entry)
}

func (m *mockLogRepo) FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.ActivityLog, error) {
	if m.findRecentByUser == nil {
		return nil, nil
	}
	return m.findRecentByUser(ctx, userID, limit)
}

func TestActivityLogService_Record_PersistsEntry(t *testing.T) {
	var got *db_models.ActivityLog
	repo := &mockLogRepo{
		insert: func(_ context.Context, entry *db_models.ActivityLog) error {
			got = entry
			return nil
		},
	}
	svc := services.NewActivityLogService(repo)
	userID := uuid.New()

	svc.Record(context.Background(), userID, db_models.ActionCreatedTrip, map[string]interface{}{
		"tripId": "t1",
	})

	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, db_models.ActionCreatedTrip, got.Action)
	assert.JSONEq(t, `{"tripId":"t1"}`, string(got.Details))
}

func TestActivityLogService_Record_SwallowsInsertFailure(t *testing.T) {
	repo := &mockLogRepo{
		insert: func(_ context.Context, _ *db_models.ActivityLog) error {
			return errors.New("disk full")
		},
	}
	svc := services.NewActivityLogService(repo)

	// Must not panic or surface the failure in any way.
	svc.Record(context.Background(), uuid.New(), db_models.ActionDeletedTrip, nil)
}

func TestActivityLogService_RecentByUser_DefaultLimit(t *testing.T) {
	var gotLimit int
	repo := &mockLogRepo{
		findRecentByUser: func(_ context.Context, _ string, limit int) ([]db_models.ActivityLog, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := services.NewActivityLogService(repo)

	_, err := svc.RecentByUser(context.Background(), uuid.NewString(), 0)

	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
}

func TestActivityLogService_RecentByUser_MapsEntries(t *testing.T) {
	entry := db_models.ActivityLog{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Action: db_models.ActionCreatedStop,
	}
	repo := &mockLogRepo{
		findRecentByUser: func(_ context.Context, _ string, _ int) ([]db_models.ActivityLog, error) {
			return []db_models.ActivityLog{entry}, nil
		},
	}
	svc := services.NewActivityLogService(repo)

	got, err := svc.RecentByUser(context.Background(), entry.UserID.String(), 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entry.ID.String(), got[0].ID)
	assert.Equal(t, db_models.ActionCreatedStop, got[0].Action)
}
