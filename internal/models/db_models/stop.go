package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Stop is one geographic leg of a trip. The trip reference is never
// verified against the trips table; dangling stops are tolerated.
type Stop struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index"`
	City      string
	StartDate time.Time
	EndDate   time.Time
}
