package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"hive-match.backend/internal/domain/entities"
	redispkg "hive-match.backend/pkg/redis"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ListPending(ctx context.Context) ([]*entities.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus, reason string) error {
	args := m.Called(ctx, userID, status, reason)
	return args.Error(0)
}

func (m *MockProfileRepository) ListVerified(ctx context.Context, exclude uuid.UUID, filter entities.BrowseFilter) ([]*entities.Profile, int64, error) {
	args := m.Called(ctx, exclude, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Profile), args.Get(1).(int64), args.Error(2)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) Grant(ctx context.Context, grant *entities.AdminGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockAdminRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAdminRepository) List(ctx context.Context) ([]*entities.AdminGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AdminGrant), args.Error(1)
}

// Mock AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, log *entities.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByActor(ctx context.Context, actorID string, limit int) ([]*entities.AuditLog, error) {
	args := m.Called(ctx, actorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLog), args.Error(1)
}

// Mock DecisionRepository
type MockDecisionRepository struct {
	mock.Mock
}

func (m *MockDecisionRepository) Upsert(ctx context.Context, decision *entities.Decision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}

func (m *MockDecisionRepository) HasLiked(ctx context.Context, actorID, recipientID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, recipientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDecisionRepository) ListMutualMatches(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockDecisionRepository) CountLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ResetSessionStore
type MockResetSessionStore struct {
	mock.Mock
}

func (m *MockResetSessionStore) CreateSession(ctx context.Context, sessionID string, data *redispkg.ResetSession, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockResetSessionStore) GetSession(ctx context.Context, sessionID string) (*redispkg.ResetSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redispkg.ResetSession), args.Error(1)
}

func (m *MockResetSessionStore) ConsumeSession(ctx context.Context, sessionID string) (*redispkg.ResetSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redispkg.ResetSession), args.Error(1)
}

// Mock LikeCountCache
type MockLikeCountCache struct {
	mock.Mock
}

func (m *MockLikeCountCache) Get(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeCountCache) Set(ctx context.Context, userID string, count int64) error {
	args := m.Called(ctx, userID, count)
	return args.Error(0)
}

func (m *MockLikeCountCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
