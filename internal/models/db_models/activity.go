package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	BaseModel
	StopID       uuid.UUID `gorm:"type:uuid;index"`
	ActivityName string
	Cost         float64
	Day          time.Time
}
