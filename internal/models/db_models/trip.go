package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	TripName    string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	CoverImage  Image `gorm:"embedded;embeddedPrefix:cover_"`
}
