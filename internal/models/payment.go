package models

import "time"

// Payment is a receipt recorded against one khata entry. LenderID is
// copied from the entry at creation and always equals the entry's lender.
// Payments are never edited; they are removed only when their entry is
// deleted.
type Payment struct {
	ID           uint      `gorm:"primaryKey"`
	LenderID     uint      `gorm:"index;not null"`
	KhataEntryID uint      `gorm:"index;not null"`
	PaymentDate  time.Time `gorm:"not null"`
	Amount       float64   `gorm:"not null"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time
}
