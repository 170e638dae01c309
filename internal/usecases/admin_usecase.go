package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/domain/repositories"
	"hive-match.backend/pkg/crypto"
	"hive-match.backend/pkg/logger"
)

// AdminUsecase handles the profile-verification workflow and the privileged
// password-set path.
type AdminUsecase struct {
	adminRepo   repositories.AdminRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	auditRepo   repositories.AuditRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	adminRepo repositories.AdminRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditRepository,
) *AdminUsecase {
	return &AdminUsecase{
		adminRepo:   adminRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
	}
}

// IsAdmin reports admin membership after one lookup. Callers that gate on it
// must treat errors as "not admin".
func (u *AdminUsecase) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return u.adminRepo.IsAdmin(ctx, userID)
}

// ListPendingProfiles lists profiles awaiting review
func (u *AdminUsecase) ListPendingProfiles(ctx context.Context) ([]*entities.Profile, error) {
	return u.profileRepo.ListPending(ctx)
}

// ReviewProfile transitions a pending profile to verified or rejected. The
// caller is already past the admin gate; the decision is audited either way.
func (u *AdminUsecase) ReviewProfile(ctx context.Context, reviewerID, targetUserID uuid.UUID, input *entities.ReviewProfileInput) error {
	if !input.Status.ValidReviewTarget() {
		return domainerrors.BadRequest("Status must be verified or rejected")
	}

	err := u.profileRepo.UpdateStatus(ctx, targetUserID, input.Status, input.Reason)

	u.audit(ctx, reviewerID.String(), entities.AuditActionReviewProfile, targetUserID.String(), err == nil,
		fmt.Sprintf("status=%s", input.Status))

	if err != nil {
		if errors.Is(err, domainerrors.ErrStatusConflict) {
			return domainerrors.Conflict("Profile already reviewed")
		}
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Profile not found")
		}
		return err
	}
	return nil
}

// SetUserPassword is the admin override path. The admin id from the request
// body is re-verified against the admin set here, regardless of how the
// caller authenticated; a client-asserted admin flag is never trusted.
func (u *AdminUsecase) SetUserPassword(ctx context.Context, input *entities.SetPasswordInput) error {
	adminID, err := uuid.Parse(input.AdminUserID)
	if err != nil {
		u.audit(ctx, input.AdminUserID, entities.AuditActionSetPassword, input.TargetUserID, false, "malformed admin id")
		return domainerrors.Forbidden("Not authorized")
	}

	isAdmin, err := u.adminRepo.IsAdmin(ctx, adminID)
	if err != nil || !isAdmin {
		// Lookup failure and absence both fail closed.
		u.audit(ctx, input.AdminUserID, entities.AuditActionSetPassword, input.TargetUserID, false, "not in admin set")
		return domainerrors.Forbidden("Not authorized")
	}

	targetID, err := uuid.Parse(input.TargetUserID)
	if err != nil {
		u.audit(ctx, input.AdminUserID, entities.AuditActionSetPassword, input.TargetUserID, false, "malformed target id")
		return domainerrors.BadRequest("Invalid target user id")
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, targetID, passwordHash); err != nil {
		u.audit(ctx, input.AdminUserID, entities.AuditActionSetPassword, input.TargetUserID, false, "update failed")
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return err
	}

	u.audit(ctx, input.AdminUserID, entities.AuditActionSetPassword, input.TargetUserID, true, "")
	return nil
}

// audit appends an entry; audit failures are logged, never surfaced, so the
// trail can't take the workflow down with it.
func (u *AdminUsecase) audit(ctx context.Context, actorID, action, targetID string, allowed bool, detail string) {
	entry := &entities.AuditLog{
		ActorID:  actorID,
		Action:   action,
		TargetID: null.NewString(targetID, targetID != ""),
		Allowed:  allowed,
		Detail:   null.NewString(detail, detail != ""),
	}
	if err := u.auditRepo.Create(ctx, entry); err != nil {
		logger.Warn(ctx, "audit write failed", zap.String("action", action), zap.Error(err))
	}
}
