package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName        string    `gorm:"type:varchar(100);not null"`
	Age                int       `gorm:"not null"`
	Gender             string    `gorm:"type:varchar(16);not null;index"`
	City               string    `gorm:"type:varchar(100);not null;index"`
	Country            string    `gorm:"type:varchar(100);not null"`
	Religion           string    `gorm:"type:varchar(50);not null"`
	Sect               string    `gorm:"type:varchar(50)"`
	Bio                string    `gorm:"type:text"`
	PhotoURL           string    `gorm:"type:text"`
	VerificationStatus string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason    string    `gorm:"type:text"`
	VerifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
