package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/infrastructure/models"
)

// AdminRepository implements admin membership operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// IsAdmin reports membership with one exact-match lookup. A missing row is
// (false, nil); any other failure propagates so callers can fail closed.
func (r *AdminRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var m models.AdminGrant
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Grant inserts an admin membership row
func (r *AdminRepository) Grant(ctx context.Context, grant *entities.AdminGrant) error {
	m := &models.AdminGrant{
		UserID:    grant.UserID,
		Note:      grant.Note.String,
		CreatedAt: grant.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Revoke removes an admin membership row
func (r *AdminRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AdminGrant{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all admin grants
func (r *AdminRepository) List(ctx context.Context) ([]*entities.AdminGrant, error) {
	var grantModels []models.AdminGrant
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&grantModels).Error; err != nil {
		return nil, err
	}

	grants := make([]*entities.AdminGrant, 0, len(grantModels))
	for _, m := range grantModels {
		grants = append(grants, &entities.AdminGrant{
			UserID:    m.UserID,
			Note:      null.NewString(m.Note, m.Note != ""),
			CreatedAt: m.CreatedAt,
		})
	}
	return grants, nil
}
