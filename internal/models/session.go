package models

import "time"

// Session stores user login sessions (for logout and invalidation).
// The ID is the opaque token handed to the client. A nil ExpiresAt means
// the session never expires.
type Session struct {
	ID        string     `gorm:"primaryKey;size:64"` // e.g. UUID
	UserID    uint       `gorm:"index;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	Revoked   bool       `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
