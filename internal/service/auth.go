package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"khata-ledger/internal/models"
	"khata-ledger/internal/store"
	"khata-ledger/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService verifies credentials and manages server-side sessions keyed
// by an opaque token.
type AuthService struct {
	users    *store.UserStore
	sessions *store.SessionStore

	// idleTimeout of 0 means sessions never expire.
	idleTimeout time.Duration
}

func NewAuthService(db *gorm.DB, idleTimeout time.Duration) *AuthService {
	return &AuthService{
		users:       store.NewUserStore(db),
		sessions:    store.NewSessionStore(db),
		idleTimeout: idleTimeout,
	}
}

// Register creates a new lender account and logs it in.
func (s *AuthService) Register(ctx context.Context, phone, name, password string) (*models.Session, *models.User, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)

	if err := util.ValidatePhone(phone); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if name == "" {
		return nil, nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if password == "" {
		return nil, nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		PhoneNumber:  phone,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// Login authenticates by phone and password. Unknown phone and wrong
// password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*models.Session, *models.User, error) {
	phone = strings.TrimSpace(phone)

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// Logout revokes the session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// CurrentUser resolves a session token to its user. A valid lookup slides
// the idle timeout forward when one is configured.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if session.Revoked {
		return nil, ErrUnauthenticated
	}
	if session.ExpiresAt != nil && session.ExpiresAt.Before(time.Now()) {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if s.idleTimeout > 0 {
		_ = s.sessions.Touch(ctx, token, time.Now().Add(s.idleTimeout))
	}

	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, userID uint) (*models.Session, error) {
	session := &models.Session{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	if s.idleTimeout > 0 {
		expiresAt := time.Now().Add(s.idleTimeout)
		session.ExpiresAt = &expiresAt
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}
