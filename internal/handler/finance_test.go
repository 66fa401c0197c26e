package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marlenko/graveyard-management/internal/model"
	"github.com/marlenko/graveyard-management/internal/receipt"
	"github.com/marlenko/graveyard-management/internal/store"
)

func newFinanceHandler(t *testing.T) *FinanceHandler {
	t.Helper()
	ledger := store.NewFinanceStore()
	store.SeedFinanceStore(ledger)
	return NewFinanceHandler(ledger, store.SeedRegistry(), receipt.New())
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreatePaymentRejectsMissingFields(t *testing.T) {
	bodies := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"blank name", `{"payerName":"  ","payerEmail":"a@b.c","payerPhone":"555","amount":100,"description":"x"}`},
		{"no amount", `{"payerName":"A","payerEmail":"a@b.c","payerPhone":"555","description":"x"}`},
		{"no description", `{"payerName":"A","payerEmail":"a@b.c","payerPhone":"555","amount":100}`},
	}
	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			h := newFinanceHandler(t)
			before := len(h.Ledger.Payments())
			c, rec := postJSON(echo.New(), "/v1/payments", tt.body)
			if err := h.CreatePayment(c); err != nil {
				t.Fatalf("CreatePayment: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp["error"] != "Please fill in all required fields" {
				t.Errorf("error = %q", resp["error"])
			}
			if got := len(h.Ledger.Payments()); got != before {
				t.Errorf("payment created despite validation failure")
			}
		})
	}
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-50"} {
		h := newFinanceHandler(t)
		body := `{"payerName":"A","payerEmail":"a@b.c","payerPhone":"555","amount":` + amount + `,"description":"x"}`
		c, rec := postJSON(echo.New(), "/v1/payments", body)
		if err := h.CreatePayment(c); err != nil {
			t.Fatalf("CreatePayment: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("amount %s: status = %d, want 400", amount, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["error"] != "Amount must be greater than 0" {
			t.Errorf("amount %s: error = %q", amount, resp["error"])
		}
	}
}

func TestCreatePaymentDefaultsAndReceipt(t *testing.T) {
	h := newFinanceHandler(t)
	body := `{"payerName":"New Payer","payerEmail":"n@p.c","payerPhone":"555-9999","amount":1200,"description":"Plot booking"}`
	c, rec := postJSON(echo.New(), "/v1/payments", body)
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var p model.Payment
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Type and status fall back to their defaults when omitted.
	if p.PaymentType != model.TypeOther {
		t.Errorf("PaymentType = %q, want other", p.PaymentType)
	}
	if p.Status != model.PaymentPending {
		t.Errorf("Status = %q, want pending", p.Status)
	}
	if !strings.HasPrefix(p.ReceiptNumber, "RCP-") || !strings.HasSuffix(p.ReceiptNumber, "-0005") {
		t.Errorf("ReceiptNumber = %q, want sequence 0005", p.ReceiptNumber)
	}
	// The new payment is first in the ledger.
	if all := h.Ledger.Payments(); all[0].ID != p.ID {
		t.Error("created payment not at the head of the ledger")
	}
}

func TestCreatePaymentRejectsUnknownEnums(t *testing.T) {
	h := newFinanceHandler(t)
	body := `{"payerName":"A","payerEmail":"a@b.c","payerPhone":"555","amount":10,"description":"x","paymentType":"lease"}`
	c, rec := postJSON(echo.New(), "/v1/payments", body)
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListPaymentsFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string // expected payer names in response order
	}{
		{"unfiltered", "", []string{"John Smith", "Mary Johnson", "Robert Davis", "Sarah Wilson"}},
		{"free text on name", "q=mary", []string{"Mary Johnson"}},
		{"free text on receipt", "q=rcp-2024-0001", []string{"John Smith"}},
		{"status filter", "status=completed", []string{"John Smith", "Mary Johnson"}},
		{"type filter", "type=maintenance", []string{"Sarah Wilson"}},
		{"all disables filter", "status=all&type=all", []string{"John Smith", "Mary Johnson", "Robert Davis", "Sarah Wilson"}},
		{"combined", "q=booking&status=pending", []string{"Robert Davis"}},
		{"unknown status matches nothing", "status=paid", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFinanceHandler(t)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/payments?"+tt.query, nil)
			rec := httptest.NewRecorder()
			if err := h.ListPayments(e.NewContext(req, rec)); err != nil {
				t.Fatalf("ListPayments: %v", err)
			}
			var out []model.Payment
			if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(out) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(out), len(tt.want))
			}
			for i, name := range tt.want {
				if out[i].PayerName != name {
					t.Errorf("out[%d] = %q, want %q", i, out[i].PayerName, name)
				}
			}
		})
	}
}

func TestUpdatePaymentClearsDueDate(t *testing.T) {
	h := newFinanceHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/v1/payments/3", strings.NewReader(`{"dueDate":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.UpdatePayment(c); err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var p model.Payment
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.DueDate != nil {
		t.Errorf("DueDate = %v, want cleared", p.DueDate)
	}
	if got, _ := h.Ledger.ByID("3"); got.DueDate != nil {
		t.Error("stored payment still has a due date")
	}
}

func TestGetReceiptRendersHTML(t *testing.T) {
	h := newFinanceHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/payments/1/receipt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.GetReceipt(c); err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	doc := rec.Body.String()
	for _, want := range []string{"Receipt #RCP-2024-0001", "John Smith", "Plot A1", "Grave #5"} {
		if !strings.Contains(doc, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestGetReceiptMissingPayment(t *testing.T) {
	h := newFinanceHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/payments/nope/receipt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := h.GetReceipt(c); err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSummaryAggregates(t *testing.T) {
	h := newFinanceHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/finance/summary", nil)
	rec := httptest.NewRecorder()
	if err := h.Summary(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	var resp struct {
		TotalRevenue  float64 `json:"totalRevenue"`
		PendingAmount float64 `json:"pendingAmount"`
		OverdueAmount float64 `json:"overdueAmount"`
		OverdueCount  int     `json:"overdueCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalRevenue != 6000 || resp.PendingAmount != 1500 || resp.OverdueAmount != 800 || resp.OverdueCount != 1 {
		t.Errorf("summary = %+v", resp)
	}
}
