package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AdminGrant marks a user as authorized for admin actions. Presence of a row
// for a user id is the single source of truth for membership; there is no
// role hierarchy.
type AdminGrant struct {
	UserID    uuid.UUID   `json:"userId"`
	Note      null.String `json:"note,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SetPasswordInput is the admin override for setting another user's password
// without the self-service reset flow.
type SetPasswordInput struct {
	TargetUserID string `json:"targetUserId" binding:"required"`
	NewPassword  string `json:"newPassword" binding:"required,min=6"`
	AdminUserID  string `json:"adminUserId" binding:"required"`
}
