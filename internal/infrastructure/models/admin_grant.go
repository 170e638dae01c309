package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminGrant struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
}
