package store

import (
	"context"
	"errors"

	"khata-ledger/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStore persists payments. Payments are insert-only; they go away
// only when their parent entry is deleted.
type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) Insert(ctx context.Context, payment *models.Payment) error {
	return s.db.WithContext(ctx).Create(payment).Error
}

func (s *PaymentStore) Get(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentStore) ListByLender(ctx context.Context, lenderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByEntry replaces implicit relationship traversal: payments for an
// entry are an explicit query, not a lazy-loaded field.
func (s *PaymentStore) ListByEntry(ctx context.Context, entryID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("khata_entry_id = ?", entryID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
