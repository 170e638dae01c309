package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Audit actions recorded for privileged operations.
const (
	AuditActionSetPassword   = "admin.set_password"
	AuditActionReviewProfile = "admin.review_profile"
)

// AuditLog records one privileged attempt, allowed or denied.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	ActorID   string      `json:"actorId"`
	Action    string      `json:"action"`
	TargetID  null.String `json:"targetId,omitempty"`
	Allowed   bool        `json:"allowed"`
	Detail    null.String `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
