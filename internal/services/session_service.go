package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService issues and resolves opaque session tokens. The client holds a
// random value; the store keeps only its sha256, so a leaked database dump
// cannot be replayed as a cookie and a forged cookie resolves to nothing.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Issue mints a session for the user and returns the raw token destined for
// the cookie. The raw value is never persisted.
func (s *SessionService) Issue(userID uuid.UUID) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(rawBytes)

	session := models.Session{
		ID:         uuid.New(),
		UserID:     userID,
		TokenHash:  hashToken(token),
		LastSeenAt: time.Now(),
	}

	if err := s.db.Create(&session).Error; err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Resolve maps a raw cookie token back to its user. An empty token, an
// unknown token, and a session whose user no longer exists all come back as
// ErrSessionNotFound; callers treat that as unauthenticated.
func (s *SessionService) Resolve(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	if err := s.db.Where("token_hash = ?", hashToken(token)).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return &user, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
