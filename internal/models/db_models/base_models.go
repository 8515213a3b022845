package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// Image holds an uploaded binary blob with its declared MIME type and the
// original filename, stored verbatim. Bytes are only base64-encoded at the
// HTTP boundary.
type Image struct {
	Data        []byte `gorm:"type:bytea"`
	ContentType string
	Filename    string
}

// Present reports whether an image was actually uploaded.
func (i Image) Present() bool {
	return len(i.Data) > 0
}
