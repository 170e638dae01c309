package repositories

import (
	"context"

	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
)

// DecisionRepository defines like/pass data operations
type DecisionRepository interface {
	// Upsert writes the decision for (actor, recipient), overwriting any
	// earlier call on the same pair.
	Upsert(ctx context.Context, decision *entities.Decision) error
	// HasLiked reports whether actor has an existing like on recipient.
	HasLiked(ctx context.Context, actorID, recipientID uuid.UUID) (bool, error)
	// ListMutualMatches returns user ids with likes in both directions.
	ListMutualMatches(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// CountLikesReceived counts distinct actors who liked the user.
	CountLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error)
}
