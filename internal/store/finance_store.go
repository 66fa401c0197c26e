package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marlenko/graveyard-management/internal/model"
)

// FinanceStore holds the flat payment ledger.  Payments are kept
// newest first.  Aggregates are plain linear scans recomputed on every
// call; the ledger is small enough that caching would buy nothing.
//
// Receipt numbers come from a counter that only ever increases, so a
// deleted payment never frees its sequence number for reuse.
type FinanceStore struct {
	mu         sync.RWMutex
	payments   []model.Payment
	receiptSeq int
}

// NewFinanceStore returns an empty ledger.
func NewFinanceStore() *FinanceStore {
	return &FinanceStore{}
}

// nextReceiptNumber advances the counter and formats the receipt
// number for the current year.  Caller must hold the write lock.
func (s *FinanceStore) nextReceiptNumber() string {
	s.receiptSeq++
	return fmt.Sprintf("RCP-%d-%04d", time.Now().Year(), s.receiptSeq)
}

// Add assigns an ID, creation time and receipt number, prepends the
// payment and returns it.  Field validation happens at the form
// boundary, not here.
func (s *FinanceStore) Add(p model.Payment) model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	p.ReceiptNumber = s.nextReceiptNumber()
	s.payments = append([]model.Payment{p}, s.payments...)
	return p
}

// PaymentPatch carries the optional fields of a partial payment update.
type PaymentPatch struct {
	PayerName      *string
	PayerEmail     *string
	PayerPhone     *string
	Amount         *float64
	PaymentType    *model.PaymentType
	Status         *model.PaymentStatus
	PlotID         *string
	GraveID        *string
	BurialRecordID *string
	Description    *string
	PaymentDate    *time.Time
	DueDate        *time.Time
	ClearDueDate   bool // removes the due date; wins over DueDate
}

// Update merges the patch into the stored payment and returns the result.
func (s *FinanceStore) Update(id string, patch PaymentPatch) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		p := s.payments[i]
		if patch.PayerName != nil {
			p.PayerName = *patch.PayerName
		}
		if patch.PayerEmail != nil {
			p.PayerEmail = *patch.PayerEmail
		}
		if patch.PayerPhone != nil {
			p.PayerPhone = *patch.PayerPhone
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.PaymentType != nil {
			p.PaymentType = *patch.PaymentType
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.PlotID != nil {
			p.PlotID = *patch.PlotID
		}
		if patch.GraveID != nil {
			p.GraveID = *patch.GraveID
		}
		if patch.BurialRecordID != nil {
			p.BurialRecordID = *patch.BurialRecordID
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.PaymentDate != nil {
			p.PaymentDate = *patch.PaymentDate
		}
		if patch.ClearDueDate {
			p.DueDate = nil
		} else if patch.DueDate != nil {
			p.DueDate = patch.DueDate
		}
		s.payments[i] = p
		return p, nil
	}
	return model.Payment{}, ErrPaymentNotFound
}

// Delete removes the payment.  Its receipt number is never reissued.
func (s *FinanceStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.payments {
		if p.ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}

// ByID returns the payment with the given ID.
func (s *FinanceStore) ByID(id string) (model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Payment{}, ErrPaymentNotFound
}

// Payments returns a copy of the ledger, newest first.
func (s *FinanceStore) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Search returns the payments matching a free-text query and optional
// status/type filters, newest first.  The query is a case-insensitive
// substring match over payer name, payer email, receipt number and
// description; a zero-valued status or type disables that filter.
func (s *FinanceStore) Search(query string, status model.PaymentStatus, ptype model.PaymentType) []model.Payment {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Payment
	for _, p := range s.payments {
		if status != "" && p.Status != status {
			continue
		}
		if ptype != "" && p.PaymentType != ptype {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery reports whether the lowercased needle appears in any of
// the payment's searchable text fields.
func matchesQuery(p model.Payment, q string) bool {
	for _, field := range []string{p.PayerName, p.PayerEmail, p.ReceiptNumber, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (s *FinanceStore) sumByStatus(status model.PaymentStatus) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, p := range s.payments {
		if p.Status == status {
			sum += p.Amount
		}
	}
	return sum
}

// TotalRevenue is the sum of completed payment amounts.
func (s *FinanceStore) TotalRevenue() float64 {
	return s.sumByStatus(model.PaymentCompleted)
}

// PendingAmount is the sum of pending payment amounts.
func (s *FinanceStore) PendingAmount() float64 {
	return s.sumByStatus(model.PaymentPending)
}

// OverdueAmount is the sum of overdue payment amounts.
func (s *FinanceStore) OverdueAmount() float64 {
	return s.sumByStatus(model.PaymentOverdue)
}

// OverduePayments returns every payment whose status is overdue.
func (s *FinanceStore) OverduePayments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.Status == model.PaymentOverdue {
			out = append(out, p)
		}
	}
	return out
}

// seed installs a prebuilt ledger and positions the receipt counter
// after the highest seeded sequence.
func (s *FinanceStore) seed(payments []model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = payments
	s.receiptSeq = len(payments)
}
