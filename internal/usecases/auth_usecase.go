package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/domain/repositories"
	"hive-match.backend/pkg/crypto"
	"hive-match.backend/pkg/jwt"
	redispkg "hive-match.backend/pkg/redis"
	"hive-match.backend/pkg/token"
)

// MinPasswordLength is enforced on every path that sets a password.
const MinPasswordLength = 6

// ResetSessionStore abstracts the redis-backed one-shot session behind a
// reset link.
type ResetSessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redispkg.ResetSession, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redispkg.ResetSession, error)
	ConsumeSession(ctx context.Context, sessionID string) (*redispkg.ResetSession, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jwtService  *jwt.JWTService
	resetTokens *token.ResetTokenService
	resetStore  ResetSessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jwtService *jwt.JWTService,
	resetTokens *token.ResetTokenService,
	resetStore ResetSessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		resetTokens: resetTokens,
		resetStore:  resetStore,
	}
}

// Register creates a user and a pending profile
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		UserID:             user.ID,
		DisplayName:        input.DisplayName,
		Age:                input.Age,
		Gender:             input.Gender,
		City:               input.City,
		Country:            input.Country,
		Religion:           input.Religion,
		VerificationStatus: entities.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ChangePassword changes the authenticated user's password
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.userRepo.UpdatePassword(ctx, userID, passwordHash)
}

// RequestPasswordReset issues a reset token for the given email. Unknown
// emails return an empty token with no error so the endpoint cannot be used
// for account enumeration.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	sessionID := uuid.New().String()
	session := &redispkg.ResetSession{UserID: user.ID.String(), Email: user.Email}
	if err := u.resetStore.CreateSession(ctx, sessionID, session, u.resetTokens.TTL()); err != nil {
		return "", err
	}

	return u.resetTokens.Issue(sessionID, user.ID)
}

// CheckResetSession validates a reset token against its stored session
// without consuming it. Used when the reset form mounts.
func (u *AuthUsecase) CheckResetSession(ctx context.Context, rawToken string) error {
	claims, err := u.resetTokens.Parse(rawToken)
	if err != nil {
		return domainerrors.ErrTokenExpired
	}

	session, err := u.resetStore.GetSession(ctx, claims.SessionID)
	if err != nil || session == nil || session.UserID != claims.UserID.String() {
		return domainerrors.ErrTokenExpired
	}
	return nil
}

// ResetPassword sets a new password through a reset session. Length and
// confirmation are checked before the token or any store is touched.
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	if len(input.NewPassword) < MinPasswordLength {
		return domainerrors.BadRequest("Password must be at least 6 characters")
	}
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.BadRequest("Passwords do not match")
	}

	claims, err := u.resetTokens.Parse(input.Token)
	if err != nil {
		return domainerrors.ErrTokenExpired
	}

	session, err := u.resetStore.GetSession(ctx, claims.SessionID)
	if err != nil || session == nil || session.UserID != claims.UserID.String() {
		return domainerrors.ErrTokenExpired
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, claims.UserID, passwordHash); err != nil {
		return err
	}

	// One-shot: the link is dead after a successful reset.
	_, err = u.resetStore.ConsumeSession(ctx, claims.SessionID)
	return err
}
