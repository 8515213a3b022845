package repositories

import (
	"context"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *db_models.ActivityLog) error
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry *db_models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.ActivityLog, error) {
	var logs []db_models.ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
