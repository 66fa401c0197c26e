package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/marlenko/graveyard-management/internal/model"
)

func TestSeededAggregates(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	// 2500 + 3500 completed, 1500 pending, 800 overdue.
	if got := s.TotalRevenue(); got != 6000 {
		t.Errorf("TotalRevenue = %v, want 6000", got)
	}
	if got := s.PendingAmount(); got != 1500 {
		t.Errorf("PendingAmount = %v, want 1500", got)
	}
	if got := s.OverdueAmount(); got != 800 {
		t.Errorf("OverdueAmount = %v, want 800", got)
	}
	overdue := s.OverduePayments()
	if len(overdue) != 1 {
		t.Fatalf("overdue count = %d, want 1", len(overdue))
	}
	if overdue[0].PayerName != "Sarah Wilson" {
		t.Errorf("overdue payer = %q, want Sarah Wilson", overdue[0].PayerName)
	}
}

func TestAggregatesFollowStatusChanges(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	// Completing the pending payment shifts its amount between buckets.
	completed := model.PaymentCompleted
	if _, err := s.Update("3", PaymentPatch{Status: &completed}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.TotalRevenue(); got != 7500 {
		t.Errorf("TotalRevenue = %v, want 7500", got)
	}
	if got := s.PendingAmount(); got != 0 {
		t.Errorf("PendingAmount = %v, want 0", got)
	}

	// Deleting the overdue payment empties that bucket.
	if err := s.Delete("4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := s.OverdueAmount(); got != 0 {
		t.Errorf("OverdueAmount = %v, want 0", got)
	}
	if got := s.OverduePayments(); len(got) != 0 {
		t.Errorf("overdue count = %d, want 0", len(got))
	}
}

func TestReceiptNumberContinuesAfterSeed(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	p := s.Add(model.Payment{PayerName: "Test Payer", Amount: 100})
	want := fmt.Sprintf("RCP-%d-0005", time.Now().Year())
	if p.ReceiptNumber != want {
		t.Errorf("ReceiptNumber = %q, want %q", p.ReceiptNumber, want)
	}
}

func TestReceiptNumbersNeverReused(t *testing.T) {
	s := NewFinanceStore()

	first := s.Add(model.Payment{PayerName: "A", Amount: 1})
	second := s.Add(model.Payment{PayerName: "B", Amount: 1})
	if first.ReceiptNumber == second.ReceiptNumber {
		t.Fatalf("duplicate receipt number %q", first.ReceiptNumber)
	}

	// Deleting a payment must not free its sequence number.
	if err := s.Delete(second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	third := s.Add(model.Payment{PayerName: "C", Amount: 1})
	want := fmt.Sprintf("RCP-%d-0003", time.Now().Year())
	if third.ReceiptNumber != want {
		t.Errorf("ReceiptNumber = %q, want %q", third.ReceiptNumber, want)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	added := s.Add(model.Payment{PayerName: "Newest", Amount: 50})
	all := s.Payments()
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
	if all[0].ID != added.ID {
		t.Errorf("newest payment not first: %s", all[0].PayerName)
	}
	if all[4].PayerName != "Sarah Wilson" {
		t.Errorf("oldest payment = %q, want Sarah Wilson", all[4].PayerName)
	}
}

func TestUpdateMergesOnlyPatchedFields(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	amount := 999.0
	updated, err := s.Update("1", PaymentPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 999 {
		t.Errorf("Amount = %v, want 999", updated.Amount)
	}
	if updated.PayerName != "John Smith" || updated.ReceiptNumber != "RCP-2024-0001" {
		t.Error("unpatched fields changed")
	}
}

func TestSearchFiltersLedger(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	tests := []struct {
		name   string
		query  string
		status model.PaymentStatus
		ptype  model.PaymentType
		want   []string // expected payer names in ledger order
	}{
		{"name substring case-insensitive", "mary", "", "", []string{"Mary Johnson"}},
		{"email substring", "r.davis@", "", "", []string{"Robert Davis"}},
		{"receipt number", "RCP-2024-0004", "", "", []string{"Sarah Wilson"}},
		{"description", "maintenance fee", "", "", []string{"Sarah Wilson"}},
		{"status only", "", model.PaymentCompleted, "", []string{"John Smith", "Mary Johnson"}},
		{"type only", "", "", model.TypePlotBooking, []string{"John Smith", "Robert Davis"}},
		{"query and status combined", "plot", model.PaymentPending, "", []string{"Robert Davis"}},
		{"no match", "zzz", "", "", nil},
		{"unknown status matches nothing", "", model.PaymentStatus("paid"), "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.query, tt.status, tt.ptype)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].PayerName != name {
					t.Errorf("got[%d] = %q, want %q", i, got[i].PayerName, name)
				}
			}
		})
	}
}

func TestUpdateClearsDueDate(t *testing.T) {
	s := NewFinanceStore()
	SeedFinanceStore(s)

	// Payment 3 seeds with a due date.
	if p, _ := s.ByID("3"); p.DueDate == nil {
		t.Fatal("seed payment 3 has no due date")
	}
	p, err := s.Update("3", PaymentPatch{ClearDueDate: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", p.DueDate)
	}
}

func TestMissingPaymentErrors(t *testing.T) {
	s := NewFinanceStore()
	if _, err := s.ByID("nope"); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("ByID err = %v", err)
	}
	if _, err := s.Update("nope", PaymentPatch{}); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Update err = %v", err)
	}
	if err := s.Delete("nope"); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}
