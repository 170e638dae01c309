package usecases_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/usecases"
	"hive-match.backend/pkg/crypto"
	"hive-match.backend/pkg/jwt"
	redispkg "hive-match.backend/pkg/redis"
	"hive-match.backend/pkg/token"
)

const testResetKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newAuthUsecaseForTest(t *testing.T, userRepo *MockUserRepository, profileRepo *MockProfileRepository, store *MockResetSessionStore) *usecases.AuthUsecase {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	resetSvc, err := token.NewResetTokenService(testResetKeyHex, 30*time.Minute)
	require.NoError(t, err)
	return usecases.NewAuthUsecase(userRepo, profileRepo, jwtSvc, resetSvc, store)
}

func TestAuthUsecase_Register_EmailAlreadyExists(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), new(MockResetSessionStore))

	userRepo.On("GetByEmail", context.Background(), "exists@hive-match.app").Return(&entities.User{ID: uuid.New()}, nil).Once()

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:       "exists@hive-match.app",
		Password:    "secret1",
		DisplayName: "Exists",
		Age:         25,
		Gender:      "female",
		City:        "London",
		Country:     "UK",
		Religion:    "Islam",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Register_CreatesPendingProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	uc := newAuthUsecaseForTest(t, userRepo, profileRepo, new(MockResetSessionStore))

	userRepo.On("GetByEmail", context.Background(), "new@hive-match.app").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()
	profileRepo.On("Create", context.Background(), mock.MatchedBy(func(p *entities.Profile) bool {
		return p.VerificationStatus == entities.VerificationPending && p.DisplayName == "Amina"
	})).Return(nil).Once()

	user, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:       "new@hive-match.app",
		Password:    "secret1",
		DisplayName: "Amina",
		Age:         25,
		Gender:      "female",
		City:        "London",
		Country:     "UK",
		Religion:    "Islam",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@hive-match.app", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), new(MockResetSessionStore))

	hash, err := crypto.HashPassword("secret1")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "amina@hive-match.app", PasswordHash: hash}

	userRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), new(MockResetSessionStore))

	userRepo.On("GetByEmail", context.Background(), "missing@hive-match.app").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "missing@hive-match.app", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), new(MockResetSessionStore))

	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	user := &entities.User{ID: uuid.New(), Email: "amina@hive-match.app"}
	pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Email)
	require.NoError(t, err)

	userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()

	newPair, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)

	_, err = uc.RefreshToken(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), new(MockResetSessionStore))

	hash, err := crypto.HashPassword("current1")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "amina@hive-match.app", PasswordHash: hash}

	userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil)
	userRepo.On("UpdatePassword", context.Background(), user.ID, mock.AnythingOfType("string")).Return(nil).Once()

	err = uc.ChangePassword(context.Background(), user.ID, &entities.ChangePasswordInput{
		CurrentPassword: "current1",
		NewPassword:     "fresh12",
	})
	require.NoError(t, err)

	err = uc.ChangePassword(context.Background(), user.ID, &entities.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "fresh12",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RequestPasswordReset_UnknownEmailSilent(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockResetSessionStore)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), store)

	userRepo.On("GetByEmail", context.Background(), "nobody@hive-match.app").Return(nil, domainerrors.ErrNotFound).Once()

	rawToken, err := uc.RequestPasswordReset(context.Background(), "nobody@hive-match.app")
	require.NoError(t, err)
	assert.Empty(t, rawToken)
	store.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_ResetPasswordFlow(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockResetSessionStore)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), store)

	user := &entities.User{ID: uuid.New(), Email: "amina@hive-match.app"}
	var sessionID string
	var session *redispkg.ResetSession

	userRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()
	store.On("CreateSession", context.Background(), mock.AnythingOfType("string"), mock.AnythingOfType("*redis.ResetSession"), 30*time.Minute).
		Return(nil).Run(func(args mock.Arguments) {
		sessionID = args.String(1)
		session = args.Get(2).(*redispkg.ResetSession)
	}).Once()

	rawToken, err := uc.RequestPasswordReset(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotEmpty(t, rawToken)

	store.On("GetSession", context.Background(), sessionID).Return(session, nil)
	require.NoError(t, uc.CheckResetSession(context.Background(), rawToken))

	userRepo.On("UpdatePassword", context.Background(), user.ID, mock.AnythingOfType("string")).Return(nil).Once()
	store.On("ConsumeSession", context.Background(), sessionID).Return(session, nil).Once()

	err = uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Token:           rawToken,
		NewPassword:     "fresh12",
		ConfirmPassword: "fresh12",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAuthUsecase_ResetPassword_ValidatesBeforeStores(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockResetSessionStore)
	uc := newAuthUsecaseForTest(t, userRepo, new(MockProfileRepository), store)

	// Too short.
	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Token:           "anything",
		NewPassword:     "short",
		ConfirmPassword: "short",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "at least 6"))

	// Mismatch.
	err = uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Token:           "anything",
		NewPassword:     "fresh12",
		ConfirmPassword: "fresh13",
	})
	require.Error(t, err)

	// Neither path touched the session store or user repo.
	store.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_ResetPassword_BadToken(t *testing.T) {
	uc := newAuthUsecaseForTest(t, new(MockUserRepository), new(MockProfileRepository), new(MockResetSessionStore))

	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Token:           "garbage",
		NewPassword:     "fresh12",
		ConfirmPassword: "fresh12",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}
