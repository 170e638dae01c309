package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hive-match.backend/internal/domain/entities"
	"hive-match.backend/internal/infrastructure/models"
)

// DecisionRepository implements like/pass data operations
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

// Upsert writes the decision for (actor, recipient). The composite primary
// key guarantees a single row per pair; conflicts update liked + updated_at.
func (r *DecisionRepository) Upsert(ctx context.Context, decision *entities.Decision) error {
	m := &models.Decision{
		ActorID:     decision.ActorID,
		RecipientID: decision.RecipientID,
		Liked:       decision.Liked,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"liked":      decision.Liked,
			"updated_at": time.Now(),
		}),
	}).Create(m).Error
}

// HasLiked reports whether actor has an existing like on recipient
func (r *DecisionRepository) HasLiked(ctx context.Context, actorID, recipientID uuid.UUID) (bool, error) {
	var m models.Decision
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND recipient_id = ? AND liked = ?", actorID, recipientID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListMutualMatches returns user ids that liked userID and were liked back
func (r *DecisionRepository) ListMutualMatches(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Decision{}).
		Select("decisions.recipient_id").
		Joins("JOIN decisions back ON back.actor_id = decisions.recipient_id AND back.recipient_id = decisions.actor_id AND back.liked = ?", true).
		Where("decisions.actor_id = ? AND decisions.liked = ?", userID, true).
		Order("decisions.updated_at DESC").
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountLikesReceived counts distinct actors who liked the user
func (r *DecisionRepository) CountLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Decision{}).
		Where("recipient_id = ? AND liked = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
