package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// ResetSession is the state behind an outstanding password-reset link.
// The session is one-shot: consuming it removes it.
type ResetSession struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ResetStore keeps password-reset sessions in Redis, encrypted at rest.
type ResetStore struct {
	encryptionKey []byte
}

var (
	setResetValue = Set
	getResetValue = Get
	delResetValue = Del
)

// NewResetStore creates a new reset store
func NewResetStore(encryptionKeyHex string) (*ResetStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &ResetStore{encryptionKey: key}, nil
}

// CreateSession stores an encrypted reset session in Redis
func (s *ResetStore) CreateSession(ctx context.Context, sessionID string, data *ResetSession, expiration time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setResetValue(ctx, "reset:"+sessionID, encryptedData, expiration)
}

// GetSession retrieves and decrypts a reset session from Redis
func (s *ResetStore) GetSession(ctx context.Context, sessionID string) (*ResetSession, error) {
	encryptedDataStr, err := getResetValue(ctx, "reset:"+sessionID)
	if err != nil {
		return nil, err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return nil, err
	}

	var data ResetSession
	if err := json.Unmarshal(decryptedData, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// ConsumeSession retrieves a reset session and removes it so the same link
// cannot be replayed.
func (s *ResetStore) ConsumeSession(ctx context.Context, sessionID string) (*ResetSession, error) {
	data, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := delResetValue(ctx, "reset:"+sessionID); err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteSession removes a reset session from Redis
func (s *ResetStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delResetValue(ctx, "reset:"+sessionID)
}

func (s *ResetStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *ResetStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
