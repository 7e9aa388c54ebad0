package models

import "time"

// KhataEntry is one billed transaction recorded against a farmer.
// LenderID scopes the entry to the user who created it; date and lender
// are fixed at creation, the remaining fields may be edited in place.
type KhataEntry struct {
	ID             uint      `gorm:"primaryKey"`
	LenderID       uint      `gorm:"index;not null"`
	FarmerName     string    `gorm:"size:100;not null"`
	CropKind       string    `gorm:"size:100;not null"`
	Locality       string    `gorm:"size:100;not null"`
	FarmArea       float64   `gorm:"not null"`
	BilledAmount   float64   `gorm:"not null"`
	DateOfActivity time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
