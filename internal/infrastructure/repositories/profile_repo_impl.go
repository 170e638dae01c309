package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m := toProfileModel(profile)
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByUserID gets a profile by its owning user id
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&m), nil
}

// Update updates a profile's display fields. Verification fields are owned
// by UpdateStatus and never written here.
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"display_name": profile.DisplayName,
		"age":          profile.Age,
		"gender":       profile.Gender,
		"city":         profile.City,
		"country":      profile.Country,
		"religion":     profile.Religion,
		"sect":         profile.Sect.String,
		"bio":          profile.Bio.String,
		"photo_url":    profile.PhotoURL.String,
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListPending lists all profiles awaiting review, newest first
func (r *ProfileRepository) ListPending(ctx context.Context) ([]*entities.Profile, error) {
	var profileModels []models.Profile
	err := r.db.WithContext(ctx).
		Where("verification_status = ?", string(entities.VerificationPending)).
		Order("created_at DESC").
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, toProfileEntity(&profileModels[i]))
	}
	return profiles, nil
}

// UpdateStatus transitions a pending profile to verified or rejected. The
// pending guard makes the transition first-writer-wins: a second reviewer
// hits RowsAffected==0 and gets ErrStatusConflict.
func (r *ProfileRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus, reason string) error {
	updates := map[string]interface{}{
		"verification_status": string(status),
		"updated_at":          time.Now(),
	}
	if status == entities.VerificationVerified {
		updates["verified_at"] = time.Now()
	}
	if status == entities.VerificationRejected && reason != "" {
		updates["rejection_reason"] = reason
	}

	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ? AND verification_status = ?", userID, string(entities.VerificationPending)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost review race.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Profile{}).
			Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrStatusConflict
	}
	return nil
}

// ListVerified lists verified profiles for browsing, excluding the caller,
// with optional filters and pagination.
func (r *ProfileRepository) ListVerified(ctx context.Context, exclude uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("verification_status = ?", string(entities.VerificationVerified)).
		Where("user_id <> ?", exclude)

	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.MinAge > 0 {
		query = query.Where("age >= ?", filter.MinAge)
	}
	if filter.MaxAge > 0 {
		query = query.Where("age <= ?", filter.MaxAge)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("verified_at DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var profileModels []models.Profile
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, toProfileEntity(&profileModels[i]))
	}
	return profiles, total, nil
}

func toProfileModel(p *entities.Profile) *models.Profile {
	m := &models.Profile{
		UserID:             p.UserID,
		DisplayName:        p.DisplayName,
		Age:                p.Age,
		Gender:             p.Gender,
		City:               p.City,
		Country:            p.Country,
		Religion:           p.Religion,
		Sect:               p.Sect.String,
		Bio:                p.Bio.String,
		PhotoURL:           p.PhotoURL.String,
		VerificationStatus: string(p.VerificationStatus),
		RejectionReason:    p.RejectionReason.String,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.VerifiedAt.Valid {
		t := p.VerifiedAt.Time
		m.VerifiedAt = &t
	}
	return m
}

func toProfileEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		UserID:             m.UserID,
		DisplayName:        m.DisplayName,
		Age:                m.Age,
		Gender:             m.Gender,
		City:               m.City,
		Country:            m.Country,
		Religion:           m.Religion,
		Sect:               null.NewString(m.Sect, m.Sect != ""),
		Bio:                null.NewString(m.Bio, m.Bio != ""),
		PhotoURL:           null.NewString(m.PhotoURL, m.PhotoURL != ""),
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		RejectionReason:    null.NewString(m.RejectionReason, m.RejectionReason != ""),
		VerifiedAt:         null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
