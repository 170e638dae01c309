package token

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/google/uuid"
)

var (
	ErrInvalidResetToken = errors.New("invalid reset token")
	ErrExpiredResetToken = errors.New("reset token has expired")
)

// ResetClaims is the payload carried inside a password-reset token.
type ResetClaims struct {
	SessionID string    `json:"sid"`
	UserID    uuid.UUID `json:"userId"`
	ExpiresAt int64     `json:"exp"`
}

// ResetTokenService issues and parses encrypted password-reset tokens (JWE,
// direct A256GCM). The token is opaque to the client; everything it needs is
// re-checked server-side against the reset session.
type ResetTokenService struct {
	key []byte
	ttl time.Duration
}

// NewResetTokenService creates a reset token service from a 32-byte hex key.
func NewResetTokenService(keyHex string, ttl time.Duration) (*ResetTokenService, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.New("invalid reset token key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("reset token key must be 32 bytes (64 hex chars)")
	}
	return &ResetTokenService{key: key, ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (s *ResetTokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates an encrypted reset token bound to a reset session.
func (s *ResetTokenService) Issue(sessionID string, userID uuid.UUID) (string, error) {
	claims := ResetClaims{
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl).Unix(),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: s.key},
		nil,
	)
	if err != nil {
		return "", err
	}

	obj, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return obj.CompactSerialize()
}

// Parse decrypts a reset token and validates its expiry.
func (s *ResetTokenService) Parse(raw string) (*ResetClaims, error) {
	obj, err := jose.ParseEncrypted(raw)
	if err != nil {
		return nil, ErrInvalidResetToken
	}

	payload, err := obj.Decrypt(s.key)
	if err != nil {
		return nil, ErrInvalidResetToken
	}

	var claims ResetClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidResetToken
	}

	if claims.SessionID == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidResetToken
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return nil, ErrExpiredResetToken
	}

	return &claims, nil
}
