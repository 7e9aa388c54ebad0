package store

import (
	"context"
	"errors"

	"khata-ledger/internal/models"

	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("khata entry not found")

// EntryStore persists khata entries. Every read that addresses a single
// entry on behalf of a lender goes through GetOwned, so records belonging
// to other lenders are indistinguishable from absent ones.
type EntryStore struct {
	db *gorm.DB
}

func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

func (s *EntryStore) Insert(ctx context.Context, entry *models.KhataEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *EntryStore) Get(ctx context.Context, id uint) (*models.KhataEntry, error) {
	var entry models.KhataEntry
	err := s.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetOwned fetches an entry only if it belongs to the given lender.
func (s *EntryStore) GetOwned(ctx context.Context, id, lenderID uint) (*models.KhataEntry, error) {
	var entry models.KhataEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND lender_id = ?", id, lenderID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *EntryStore) Update(ctx context.Context, entry *models.KhataEntry) error {
	return s.db.WithContext(ctx).Save(entry).Error
}

// Delete removes an entry and cascades to its payments in one transaction.
func (s *EntryStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("khata_entry_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.KhataEntry{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEntryNotFound
		}
		return nil
	})
}

// ListByLender returns all entries owned by a lender, newest activity first.
func (s *EntryStore) ListByLender(ctx context.Context, lenderID uint) ([]models.KhataEntry, error) {
	var entries []models.KhataEntry
	err := s.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("date_of_activity DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
