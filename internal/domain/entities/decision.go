package entities

import (
	"time"

	"github.com/google/uuid"
)

// Decision is an actor's like/pass call on another member. One row per
// ordered (actor, recipient) pair; repeating a decision overwrites it.
type Decision struct {
	ActorID     uuid.UUID `json:"actorId"`
	RecipientID uuid.UUID `json:"recipientId"`
	Liked       bool      `json:"liked"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DecisionInput represents a like/pass action on a profile.
type DecisionInput struct {
	Liked bool `json:"liked"`
}

// DecisionResult reports the outcome of a decision, including whether it
// completed a mutual match.
type DecisionResult struct {
	RecipientID uuid.UUID `json:"recipientId"`
	Liked       bool      `json:"liked"`
	MutualMatch bool      `json:"mutualMatch"`
}
