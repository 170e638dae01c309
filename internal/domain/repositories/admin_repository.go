package repositories

import (
	"context"

	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
)

// AdminRepository defines admin membership operations. Membership is a row in
// the admin_grants table; there are no roles.
type AdminRepository interface {
	// IsAdmin reports membership with a single exact-match lookup. It only
	// returns true on a successful lookup that finds the row.
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	Grant(ctx context.Context, grant *entities.AdminGrant) error
	Revoke(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context) ([]*entities.AdminGrant, error)
}

// AuditRepository records privileged attempts.
type AuditRepository interface {
	Create(ctx context.Context, log *entities.AuditLog) error
	ListByActor(ctx context.Context, actorID string, limit int) ([]*entities.AuditLog, error)
}
