package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit actions recorded against a user.
const (
	ActionCreatedTrip     = "created_trip"
	ActionUpdatedTrip     = "updated_trip"
	ActionDeletedTrip     = "deleted_trip"
	ActionCreatedStop     = "created_stop"
	ActionDeletedStop     = "deleted_stop"
	ActionCreatedActivity = "created_activity"
	ActionDeletedActivity = "deleted_activity"
)

// ActivityLog is an append-only audit record. It is never updated or deleted
// and is queried most-recent-first per user.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_activity_logs_user_ts"`
	Action    string
	Details   datatypes.JSON
	Timestamp time.Time `gorm:"index:idx_activity_logs_user_ts,sort:desc"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}
