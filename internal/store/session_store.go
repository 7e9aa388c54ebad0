package store

import (
	"context"
	"errors"
	"time"

	"khata-ledger/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps server-side session state keyed by the opaque token.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("id = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Touch pushes the expiry forward, implementing a sliding idle timeout.
func (s *SessionStore) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", token).
		Update("expires_at", expiresAt).Error
}

// Revoke marks a session invalid. Revoking an unknown token is not an
// error; logout is idempotent.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", token).
		Update("revoked", true).Error
}
