package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	FindByID(ctx context.Context, id string) (*db_models.Activity, error)
	FindByStop(ctx context.Context, stopID string) ([]db_models.Activity, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByStop(ctx context.Context, stopID string) error
	// SumCostByStops totals the cost column over every activity whose stop is
	// in stopIDs. An empty id set sums to 0 without touching the database.
	SumCostByStops(ctx context.Context, stopIDs []string) (float64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByStop(ctx context.Context, stopID string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("stop_id = ?", stopID).
		Order("day ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Activity{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) DeleteByStop(ctx context.Context, stopID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Activity{}, "stop_id = ?", stopID).Error
}

func (r *activityRepository) SumCostByStops(ctx context.Context, stopIDs []string) (float64, error) {
	if len(stopIDs) == 0 {
		return 0, nil
	}

	var total *float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Activity{}).
		Select("SUM(cost)").
		Where("stop_id IN ?", stopIDs).
		Scan(&total).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
