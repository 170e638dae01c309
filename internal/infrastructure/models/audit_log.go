package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID   string    `gorm:"type:varchar(64);not null;index"`
	Action    string    `gorm:"type:varchar(64);not null"`
	TargetID  string    `gorm:"type:varchar(64)"`
	Allowed   bool      `gorm:"not null"`
	Detail    string    `gorm:"type:text"`
	CreatedAt time.Time
}
