package models

import "time"

// User represents a lender account. Phone number is the login identity
// and is immutable after registration.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	PhoneNumber  string    `gorm:"size:10;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"` // "salt$hash", never plaintext
	Name         string    `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
