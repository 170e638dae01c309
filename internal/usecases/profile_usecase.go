package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"hive-match.backend/internal/domain/entities"
	"hive-match.backend/internal/domain/repositories"
	"hive-match.backend/pkg/utils"
)

// ProfileUsecase handles profile business logic
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

// GetOwnProfile returns the caller's profile
func (u *ProfileUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// UpdateOwnProfile edits the caller's display fields. Verification status is
// untouched; only an admin review moves it.
func (u *ProfileUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = input.DisplayName
	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.City = input.City
	profile.Country = input.Country
	profile.Religion = input.Religion
	profile.Sect = null.NewString(input.Sect, input.Sect != "")
	profile.Bio = null.NewString(input.Bio, input.Bio != "")
	profile.PhotoURL = null.NewString(input.PhotoURL, input.PhotoURL != "")

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByUserID(ctx, userID)
}

// Browse lists verified profiles matching the filter, excluding the caller
func (u *ProfileUsecase) Browse(ctx context.Context, userID uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page = params.Page
	filter.Limit = params.Limit

	profiles, total, err := u.profileRepo.ListVerified(ctx, userID, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return profiles, meta, nil
}
