package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"hive-match.backend/internal/domain/entities"
	"hive-match.backend/internal/infrastructure/models"
)

// AuditRepository implements the privileged-action audit trail
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an audit entry
func (r *AuditRepository) Create(ctx context.Context, log *entities.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	m := &models.AuditLog{
		ID:        log.ID,
		ActorID:   log.ActorID,
		Action:    log.Action,
		TargetID:  log.TargetID.String,
		Allowed:   log.Allowed,
		Detail:    log.Detail.String,
		CreatedAt: log.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByActor lists recent entries for one actor, newest first
func (r *AuditRepository) ListByActor(ctx context.Context, actorID string, limit int) ([]*entities.AuditLog, error) {
	query := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logModels []models.AuditLog
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]*entities.AuditLog, 0, len(logModels))
	for _, m := range logModels {
		logs = append(logs, &entities.AuditLog{
			ID:        m.ID,
			ActorID:   m.ActorID,
			Action:    m.Action,
			TargetID:  null.NewString(m.TargetID, m.TargetID != ""),
			Allowed:   m.Allowed,
			Detail:    null.NewString(m.Detail, m.Detail != ""),
			CreatedAt: m.CreatedAt,
		})
	}
	return logs, nil
}
