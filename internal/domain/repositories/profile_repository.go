package repositories

import (
	"context"

	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	ListPending(ctx context.Context) ([]*entities.Profile, error)
	// UpdateStatus transitions a pending profile to verified or rejected.
	// Returns ErrStatusConflict when the profile exists but is no longer
	// pending, ErrNotFound when it does not exist.
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus, reason string) error
	ListVerified(ctx context.Context, exclude uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, int64, error)
}
