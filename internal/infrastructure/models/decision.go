package models

import (
	"time"

	"github.com/google/uuid"
)

// Decision has a composite primary key (actor, recipient) so a pair can hold
// at most one row; repeat decisions overwrite. The recipient+liked index
// serves "who liked me" counts, the actor+recipient+liked index serves the
// mutual-like check.
type Decision struct {
	ActorID     uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_actor_recipient_liked,priority:1"`
	RecipientID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_recipient_liked,priority:1;index:idx_actor_recipient_liked,priority:2"`
	Liked       bool      `gorm:"not null;index:idx_recipient_liked,priority:2;index:idx_actor_recipient_liked,priority:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
