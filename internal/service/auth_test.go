package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"khata-ledger/internal/store"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	session, user, err := auth.Register(ctx, "9998887776", "Asha", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if session.ID == "" {
		t.Error("register should establish a session")
	}
	if user.PhoneNumber != "9998887776" || user.Name != "Asha" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	// register side effect: already logged in
	got, err := auth.CurrentUser(ctx, session.ID)
	if err != nil {
		t.Fatalf("CurrentUser after register failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("session bound to user %d, want %d", got.ID, user.ID)
	}

	// fresh login with the same credentials
	session2, _, err := auth.Login(ctx, "9998887776", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session2.ID == session.ID {
		t.Error("login should create a new session")
	}

	// wrong password
	if _, _, err := auth.Login(ctx, "9998887776", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login wrong password error = %v, want ErrInvalidCredentials", err)
	}

	// unknown phone gets the same uniform error
	if _, _, err := auth.Login(ctx, "1112223334", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login unknown phone error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	if _, _, err := auth.Register(ctx, "9998887776", "Asha", "secret1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := auth.Register(ctx, "9998887776", "Someone Else", "other")
	if !errors.Is(err, store.ErrDuplicatePhone) {
		t.Errorf("second register error = %v, want ErrDuplicatePhone", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	cases := []struct {
		name              string
		phone, lenderName string
		password          string
	}{
		{"short phone", "12345", "Asha", "secret1"},
		{"non-digit phone", "99988877a6", "Asha", "secret1"},
		{"empty name", "9998887776", "  ", "secret1"},
		{"empty password", "9998887776", "Asha", ""},
	}
	for _, tc := range cases {
		if _, _, err := auth.Register(ctx, tc.phone, tc.lenderName, tc.password); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: error = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestLogout(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	session, _, err := auth.Register(ctx, "9998887776", "Asha", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := auth.Logout(ctx, session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := auth.CurrentUser(ctx, session.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("CurrentUser after logout error = %v, want ErrUnauthenticated", err)
	}

	// logout is idempotent
	if err := auth.Logout(ctx, session.ID); err != nil {
		t.Errorf("second Logout error = %v, want nil", err)
	}
}

func TestCurrentUserInvalidTokens(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	if _, err := auth.CurrentUser(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty token error = %v, want ErrUnauthenticated", err)
	}
	if _, err := auth.CurrentUser(ctx, "no-such-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("unknown token error = %v, want ErrUnauthenticated", err)
	}
}

func TestSessionIdleTimeout(t *testing.T) {
	db := setupTestDB(t)
	// a service with a configured timeout stamps expiry on the session
	auth := NewAuthService(db, 30*time.Minute)
	ctx := context.Background()

	session, _, err := auth.Register(ctx, "9998887776", "Asha", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if session.ExpiresAt == nil {
		t.Fatal("session should carry an expiry when a timeout is configured")
	}

	// force the session into the past and confirm rejection
	past := time.Now().Add(-time.Minute)
	if err := store.NewSessionStore(db).Touch(ctx, session.ID, past); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if _, err := auth.CurrentUser(ctx, session.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expired session error = %v, want ErrUnauthenticated", err)
	}
}

func TestSessionNoTimeoutByDefault(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, 0)
	ctx := context.Background()

	session, _, err := auth.Register(ctx, "9998887776", "Asha", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if session.ExpiresAt != nil {
		t.Error("session should have no expiry when no timeout is configured")
	}
}
