package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type StopRepository interface {
	Insert(ctx context.Context, stop *db_models.Stop) error
	FindByID(ctx context.Context, id string) (*db_models.Stop, error)
	FindByTrip(ctx context.Context, tripID string) ([]db_models.Stop, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTrip(ctx context.Context, tripID string) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) Insert(ctx context.Context, stop *db_models.Stop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *stopRepository) FindByID(ctx context.Context, id string) (*db_models.Stop, error) {
	var stop db_models.Stop
	err := r.db.WithContext(ctx).First(&stop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *stopRepository) FindByTrip(ctx context.Context, tripID string) ([]db_models.Stop, error) {
	var stops []db_models.Stop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("start_date ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Stop{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stopRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Stop{}, "trip_id = ?", tripID).Error
}
