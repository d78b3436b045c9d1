package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the identity and audit timestamps shared by every entity.
// Repositories assign all three fields at save time; callers never set them.
type Audit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
