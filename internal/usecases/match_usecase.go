package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/domain/repositories"
	redispkg "hive-match.backend/pkg/redis"
)

// LikeCountCache caches the "liked you" counter. Failures are tolerated;
// the repository stays authoritative.
type LikeCountCache interface {
	Get(ctx context.Context, userID string) (int64, error)
	Set(ctx context.Context, userID string, count int64) error
	Invalidate(ctx context.Context, userID string) error
}

// MatchUsecase handles like/pass decisions and mutual matches
type MatchUsecase struct {
	decisionRepo repositories.DecisionRepository
	profileRepo  repositories.ProfileRepository
	likeCounts   LikeCountCache
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(
	decisionRepo repositories.DecisionRepository,
	profileRepo repositories.ProfileRepository,
	likeCounts LikeCountCache,
) *MatchUsecase {
	return &MatchUsecase{
		decisionRepo: decisionRepo,
		profileRepo:  profileRepo,
		likeCounts:   likeCounts,
	}
}

// Decide records a like/pass on another member's profile and reports whether
// a like completed a mutual match.
func (u *MatchUsecase) Decide(ctx context.Context, actorID, recipientID uuid.UUID, liked bool) (*entities.DecisionResult, error) {
	if actorID == recipientID {
		return nil, domainerrors.BadRequest("Cannot decide on your own profile")
	}

	recipient, err := u.profileRepo.GetByUserID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient.VerificationStatus != entities.VerificationVerified {
		return nil, domainerrors.ErrNotFound
	}

	decision := &entities.Decision{
		ActorID:     actorID,
		RecipientID: recipientID,
		Liked:       liked,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := u.decisionRepo.Upsert(ctx, decision); err != nil {
		return nil, err
	}

	if u.likeCounts != nil {
		_ = u.likeCounts.Invalidate(ctx, recipientID.String())
	}

	result := &entities.DecisionResult{
		RecipientID: recipientID,
		Liked:       liked,
	}

	if liked {
		mutual, err := u.decisionRepo.HasLiked(ctx, recipientID, actorID)
		if err != nil {
			return nil, err
		}
		result.MutualMatch = mutual
	}

	return result, nil
}

// ListMatches returns the verified profiles of mutual likes
func (u *MatchUsecase) ListMatches(ctx context.Context, userID uuid.UUID) ([]*entities.Profile, error) {
	ids, err := u.decisionRepo.ListMutualMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.Profile, 0, len(ids))
	for _, id := range ids {
		profile, err := u.profileRepo.GetByUserID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// LikedCount returns how many members liked the user, served from cache when
// fresh.
func (u *MatchUsecase) LikedCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if u.likeCounts != nil {
		count, err := u.likeCounts.Get(ctx, userID.String())
		if err == nil {
			return count, nil
		}
	}

	count, err := u.decisionRepo.CountLikesReceived(ctx, userID)
	if err != nil {
		return 0, err
	}

	if u.likeCounts != nil {
		_ = u.likeCounts.Set(ctx, userID.String(), count)
	}
	return count, nil
}

// RedisLikeCountCache adapts pkg/redis to the LikeCountCache interface.
type RedisLikeCountCache struct{}

func (RedisLikeCountCache) Get(ctx context.Context, userID string) (int64, error) {
	return redispkg.GetLikeCount(ctx, userID)
}

func (RedisLikeCountCache) Set(ctx context.Context, userID string, count int64) error {
	return redispkg.SetLikeCount(ctx, userID, count)
}

func (RedisLikeCountCache) Invalidate(ctx context.Context, userID string) error {
	return redispkg.InvalidateLikeCount(ctx, userID)
}
