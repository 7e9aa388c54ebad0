package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"khata-ledger/internal/models"
	"khata-ledger/internal/store"
	"khata-ledger/internal/util"

	"gorm.io/gorm"
)

// LedgerService implements the ledger operations: entry CRUD, payment
// marking and the dashboard aggregation. Every operation is scoped to the
// authenticated lender; an entry owned by someone else behaves exactly
// like a missing one.
type LedgerService struct {
	entries  *store.EntryStore
	payments *store.PaymentStore
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{
		entries:  store.NewEntryStore(db),
		payments: store.NewPaymentStore(db),
	}
}

// EntryInput carries the raw form fields of an add/edit request. Numeric
// fields arrive as strings and are parsed here, so a non-numeric value is
// a validation failure rather than a binding quirk.
type EntryInput struct {
	FarmerName     string
	CropKind       string
	Locality       string
	FarmArea       string
	BilledAmount   string
	DateOfActivity string // optional, YYYY-MM-DD
}

// Summary holds the dashboard aggregation for one lender. Balance may be
// negative on overpayment; nothing clamps it.
type Summary struct {
	BilledTotal   float64 `json:"billed_total"`
	PaymentsTotal float64 `json:"payments_total"`
	Balance       float64 `json:"balance"`
}

func parseEntryInput(in EntryInput) (*models.KhataEntry, error) {
	farmerName := strings.TrimSpace(in.FarmerName)
	cropKind := strings.TrimSpace(in.CropKind)
	locality := strings.TrimSpace(in.Locality)

	if farmerName == "" {
		return nil, fmt.Errorf("%w: farmer name is required", ErrValidation)
	}
	if cropKind == "" {
		return nil, fmt.Errorf("%w: crop kind is required", ErrValidation)
	}
	if locality == "" {
		return nil, fmt.Errorf("%w: locality is required", ErrValidation)
	}

	farmArea, err := strconv.ParseFloat(strings.TrimSpace(in.FarmArea), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: farm area must be a number", ErrValidation)
	}
	if err := util.ValidateFarmArea(farmArea); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	billedAmount, err := strconv.ParseFloat(strings.TrimSpace(in.BilledAmount), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: billed amount must be a number", ErrValidation)
	}

	return &models.KhataEntry{
		FarmerName:   farmerName,
		CropKind:     cropKind,
		Locality:     locality,
		FarmArea:     farmArea,
		BilledAmount: billedAmount,
	}, nil
}

// AddEntry records a new billed transaction for the lender. The activity
// date defaults to now when the field is empty.
func (s *LedgerService) AddEntry(ctx context.Context, lenderID uint, in EntryInput) (*models.KhataEntry, error) {
	entry, err := parseEntryInput(in)
	if err != nil {
		return nil, err
	}

	dateOfActivity := time.Now()
	if strings.TrimSpace(in.DateOfActivity) != "" {
		dateOfActivity, err = util.ValidateDate(strings.TrimSpace(in.DateOfActivity))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	entry.LenderID = lenderID
	entry.DateOfActivity = dateOfActivity

	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry fetches a single entry owned by the lender.
func (s *LedgerService) GetEntry(ctx context.Context, lenderID, entryID uint) (*models.KhataEntry, error) {
	return s.entries.GetOwned(ctx, entryID, lenderID)
}

// EditEntry overwrites the mutable fields of an owned entry. Lender and
// activity date stay as created.
func (s *LedgerService) EditEntry(ctx context.Context, lenderID, entryID uint, in EntryInput) (*models.KhataEntry, error) {
	entry, err := s.entries.GetOwned(ctx, entryID, lenderID)
	if err != nil {
		return nil, err
	}

	parsed, err := parseEntryInput(in)
	if err != nil {
		return nil, err
	}

	entry.FarmerName = parsed.FarmerName
	entry.CropKind = parsed.CropKind
	entry.Locality = parsed.Locality
	entry.FarmArea = parsed.FarmArea
	entry.BilledAmount = parsed.BilledAmount

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an owned entry and all payments recorded against it.
func (s *LedgerService) DeleteEntry(ctx context.Context, lenderID, entryID uint) error {
	if _, err := s.entries.GetOwned(ctx, entryID, lenderID); err != nil {
		return err
	}
	return s.entries.Delete(ctx, entryID)
}

// MarkPayment records a receipt against an owned entry. The payment's
// lender is copied from the entry, keeping both sides of the ownership
// invariant equal.
func (s *LedgerService) MarkPayment(ctx context.Context, lenderID, entryID uint, amountStr, notes string) (*models.Payment, error) {
	entry, err := s.entries.GetOwned(ctx, entryID, lenderID)
	if err != nil {
		return nil, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", ErrValidation)
	}

	payment := &models.Payment{
		LenderID:     entry.LenderID,
		KhataEntryID: entry.ID,
		PaymentDate:  time.Now(),
		Amount:       amount,
		Notes:        notes,
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// EntryPayments lists the payments recorded against one owned entry.
func (s *LedgerService) EntryPayments(ctx context.Context, lenderID, entryID uint) ([]models.Payment, error) {
	if _, err := s.entries.GetOwned(ctx, entryID, lenderID); err != nil {
		return nil, err
	}
	return s.payments.ListByEntry(ctx, entryID)
}

// ComputeSummary recomputes the lender's totals from current store state.
// Empty sets yield zero sums.
func (s *LedgerService) ComputeSummary(ctx context.Context, lenderID uint) (Summary, error) {
	entries, err := s.entries.ListByLender(ctx, lenderID)
	if err != nil {
		return Summary{}, err
	}
	payments, err := s.payments.ListByLender(ctx, lenderID)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i := range entries {
		summary.BilledTotal += entries[i].BilledAmount
	}
	for i := range payments {
		summary.PaymentsTotal += payments[i].Amount
	}
	summary.Balance = summary.BilledTotal - summary.PaymentsTotal
	return summary, nil
}

// Dashboard returns all entries owned by the lender (all-time) plus the
// aggregated totals.
func (s *LedgerService) Dashboard(ctx context.Context, lenderID uint) ([]models.KhataEntry, Summary, error) {
	entries, err := s.entries.ListByLender(ctx, lenderID)
	if err != nil {
		return nil, Summary{}, err
	}
	summary, err := s.ComputeSummary(ctx, lenderID)
	if err != nil {
		return nil, Summary{}, err
	}
	return entries, summary, nil
}
