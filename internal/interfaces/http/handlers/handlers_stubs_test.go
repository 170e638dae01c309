package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/interfaces/http/middleware"
	redispkg "hive-match.backend/pkg/redis"
)

type userRepoStub struct {
	createFn         func(ctx context.Context, user *entities.User) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entities.User, error)
	updatePasswordFn func(ctx context.Context, id uuid.UUID, hash string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

type profileRepoStub struct {
	createFn       func(ctx context.Context, profile *entities.Profile) error
	getByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	updateFn       func(ctx context.Context, profile *entities.Profile) error
	listPendingFn  func(ctx context.Context) ([]*entities.Profile, error)
	updateStatusFn func(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus, reason string) error
	listVerifiedFn func(ctx context.Context, exclude uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, int64, error)
}

func (s *profileRepoStub) Create(ctx context.Context, profile *entities.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return nil
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *profileRepoStub) Update(ctx context.Context, profile *entities.Profile) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, profile)
	}
	return nil
}

func (s *profileRepoStub) ListPending(ctx context.Context) ([]*entities.Profile, error) {
	if s.listPendingFn != nil {
		return s.listPendingFn(ctx)
	}
	return nil, nil
}

func (s *profileRepoStub) UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus, reason string) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, userID, status, reason)
	}
	return nil
}

func (s *profileRepoStub) ListVerified(ctx context.Context, exclude uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, int64, error) {
	if s.listVerifiedFn != nil {
		return s.listVerifiedFn(ctx, exclude, filter)
	}
	return nil, 0, nil
}

type adminRepoStub struct {
	admins  map[uuid.UUID]bool
	isAdmin func(ctx context.Context, userID uuid.UUID) (bool, error)
}

func (s *adminRepoStub) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.isAdmin != nil {
		return s.isAdmin(ctx, userID)
	}
	return s.admins[userID], nil
}

func (s *adminRepoStub) Grant(context.Context, *entities.AdminGrant) error { return nil }
func (s *adminRepoStub) Revoke(context.Context, uuid.UUID) error           { return nil }
func (s *adminRepoStub) List(context.Context) ([]*entities.AdminGrant, error) {
	return nil, nil
}

type auditRepoStub struct {
	entries []*entities.AuditLog
}

func (s *auditRepoStub) Create(_ context.Context, log *entities.AuditLog) error {
	s.entries = append(s.entries, log)
	return nil
}

func (s *auditRepoStub) ListByActor(context.Context, string, int) ([]*entities.AuditLog, error) {
	return nil, nil
}

type decisionRepoStub struct {
	upsertFn      func(ctx context.Context, decision *entities.Decision) error
	hasLikedFn    func(ctx context.Context, actorID, recipientID uuid.UUID) (bool, error)
	listMutualFn  func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	countReceived func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (s *decisionRepoStub) Upsert(ctx context.Context, decision *entities.Decision) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, decision)
	}
	return nil
}

func (s *decisionRepoStub) HasLiked(ctx context.Context, actorID, recipientID uuid.UUID) (bool, error) {
	if s.hasLikedFn != nil {
		return s.hasLikedFn(ctx, actorID, recipientID)
	}
	return false, nil
}

func (s *decisionRepoStub) ListMutualMatches(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if s.listMutualFn != nil {
		return s.listMutualFn(ctx, userID)
	}
	return nil, nil
}

func (s *decisionRepoStub) CountLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.countReceived != nil {
		return s.countReceived(ctx, userID)
	}
	return 0, nil
}

// resetStoreStub is an in-memory stand-in for the redis reset store.
type resetStoreStub struct {
	sessions map[string]*redispkg.ResetSession
}

func newResetStoreStub() *resetStoreStub {
	return &resetStoreStub{sessions: map[string]*redispkg.ResetSession{}}
}

func (s *resetStoreStub) CreateSession(_ context.Context, sessionID string, data *redispkg.ResetSession, _ time.Duration) error {
	s.sessions[sessionID] = data
	return nil
}

func (s *resetStoreStub) GetSession(_ context.Context, sessionID string) (*redispkg.ResetSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return session, nil
}

func (s *resetStoreStub) ConsumeSession(ctx context.Context, sessionID string) (*redispkg.ResetSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	delete(s.sessions, sessionID)
	return session, nil
}

// injectUser puts an authenticated user id in the gin context, standing in
// for the auth middleware.
func injectUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}
