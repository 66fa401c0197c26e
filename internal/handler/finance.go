package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marlenko/graveyard-management/internal/model"
	"github.com/marlenko/graveyard-management/internal/queue"
	"github.com/marlenko/graveyard-management/internal/receipt"
	queue_publisher "github.com/marlenko/graveyard-management/internal/service"
	"github.com/marlenko/graveyard-management/internal/store"
)

// FinanceHandler bundles the payment ledger, the registry used to
// resolve plot/grave names, and the receipt renderer.
type FinanceHandler struct {
	Ledger   *store.FinanceStore
	Registry *store.Registry
	Receipts *receipt.Renderer
}

// NewFinanceHandler constructs a FinanceHandler and panics on nil
// dependencies.
func NewFinanceHandler(ledger *store.FinanceStore, registry *store.Registry, receipts *receipt.Renderer) *FinanceHandler {
	if ledger == nil || registry == nil || receipts == nil {
		panic("nil dependency passed to NewFinanceHandler")
	}
	return &FinanceHandler{Ledger: ledger, Registry: registry, Receipts: receipts}
}

type paymentBody struct {
	PayerName      *string  `json:"payerName"`
	PayerEmail     *string  `json:"payerEmail"`
	PayerPhone     *string  `json:"payerPhone"`
	Amount         *float64 `json:"amount"`
	PaymentType    *string  `json:"paymentType"`
	Status         *string  `json:"status"`
	PlotID         *string  `json:"plotId"`
	GraveID        *string  `json:"graveId"`
	BurialRecordID *string  `json:"burialRecordId"`
	Description    *string  `json:"description"`
	PaymentDate    *string  `json:"paymentDate"` // RFC 3339; defaults to now
	DueDate        *string  `json:"dueDate"`     // RFC 3339
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// ListPayments handles GET /v1/payments, newest first.  Optional
// query parameters narrow the list: q is a case-insensitive substring
// match over payer name, email, receipt number and description;
// status and type filter on the exact enum value ("all" or empty
// disables the filter, an unknown value matches nothing).
func (h *FinanceHandler) ListPayments(c echo.Context) error {
	q := c.QueryParam("q")
	status := strings.TrimSpace(c.QueryParam("status"))
	ptype := strings.TrimSpace(c.QueryParam("type"))
	if status == "all" {
		status = ""
	}
	if ptype == "all" {
		ptype = ""
	}
	if q == "" && status == "" && ptype == "" {
		return c.JSON(http.StatusOK, h.Ledger.Payments())
	}
	out := h.Ledger.Search(q, model.PaymentStatus(status), model.PaymentType(ptype))
	if out == nil {
		out = []model.Payment{}
	}
	return c.JSON(http.StatusOK, out)
}

// GetPayment handles GET /v1/payments/:id.
func (h *FinanceHandler) GetPayment(c echo.Context) error {
	p, err := h.Ledger.ByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// CreatePayment handles POST /v1/payments.  Validation mirrors the
// payment form: all payer fields, the amount and the description are
// required and surface as a single user-facing message.  A recorded
// payment is announced on the message queue; publish failures never
// fail the request.
func (h *FinanceHandler) CreatePayment(c echo.Context) error {
	var body paymentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := strOr(body.PayerName)
	email := strOr(body.PayerEmail)
	phone := strOr(body.PayerPhone)
	desc := strOr(body.Description)
	if name == "" || email == "" || phone == "" || desc == "" || body.Amount == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please fill in all required fields"})
	}
	if *body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Amount must be greater than 0"})
	}

	ptype := model.PaymentType(strOr(body.PaymentType))
	if ptype == "" {
		ptype = model.TypeOther
	}
	if !ptype.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment type"})
	}
	status := model.PaymentStatus(strOr(body.Status))
	if status == "" {
		status = model.PaymentPending
	}
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment status"})
	}

	p := model.Payment{
		PayerName:      name,
		PayerEmail:     email,
		PayerPhone:     phone,
		Amount:         *body.Amount,
		PaymentType:    ptype,
		Status:         status,
		PlotID:         strOr(body.PlotID),
		GraveID:        strOr(body.GraveID),
		BurialRecordID: strOr(body.BurialRecordID),
		Description:    desc,
		PaymentDate:    time.Now().UTC(),
	}
	if s := strOr(body.PaymentDate); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid paymentDate"})
		}
		p.PaymentDate = t
	}
	if s := strOr(body.DueDate); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dueDate"})
		}
		p.DueDate = &t
	}

	created := h.Ledger.Add(p)

	go func(p model.Payment) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishPaymentRecorded(ctx, queue.PaymentRecordedEvent{
			PaymentID:     p.ID,
			ReceiptNumber: p.ReceiptNumber,
			PayerName:     p.PayerName,
			Amount:        p.Amount,
			PaymentType:   string(p.PaymentType),
			Status:        string(p.Status),
			PlotID:        p.PlotID,
			GraveID:       p.GraveID,
			RecordedAt:    p.CreatedAt.Format(time.RFC3339),
		})
	}(created)

	return c.JSON(http.StatusCreated, created)
}

// UpdatePayment handles PATCH /v1/payments/:id with a partial merge.
func (h *FinanceHandler) UpdatePayment(c echo.Context) error {
	var body paymentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	patch := store.PaymentPatch{
		PayerName:      body.PayerName,
		PayerEmail:     body.PayerEmail,
		PayerPhone:     body.PayerPhone,
		Amount:         body.Amount,
		PlotID:         body.PlotID,
		GraveID:        body.GraveID,
		BurialRecordID: body.BurialRecordID,
		Description:    body.Description,
	}
	if body.Amount != nil && *body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Amount must be greater than 0"})
	}
	if body.PaymentType != nil {
		t := model.PaymentType(strings.TrimSpace(*body.PaymentType))
		if !t.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment type"})
		}
		patch.PaymentType = &t
	}
	if body.Status != nil {
		s := model.PaymentStatus(strings.TrimSpace(*body.Status))
		if !s.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment status"})
		}
		patch.Status = &s
	}
	if body.PaymentDate != nil {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*body.PaymentDate))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid paymentDate"})
		}
		patch.PaymentDate = &t
	}
	if body.DueDate != nil {
		// An explicit empty value removes the due date; the field is
		// optional on the payment.
		if s := strings.TrimSpace(*body.DueDate); s == "" {
			patch.ClearDueDate = true
		} else {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dueDate"})
			}
			patch.DueDate = &t
		}
	}
	p, err := h.Ledger.Update(c.Param("id"), patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePayment handles DELETE /v1/payments/:id.
func (h *FinanceHandler) DeletePayment(c echo.Context) error {
	if err := h.Ledger.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary handles GET /v1/finance/summary.  All aggregates are linear
// scans over the ledger recomputed on each request.
func (h *FinanceHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"totalRevenue":  h.Ledger.TotalRevenue(),
		"pendingAmount": h.Ledger.PendingAmount(),
		"overdueAmount": h.Ledger.OverdueAmount(),
		"overdueCount":  len(h.Ledger.OverduePayments()),
	})
}

// ListOverdue handles GET /v1/finance/overdue.
func (h *FinanceHandler) ListOverdue(c echo.Context) error {
	out := h.Ledger.OverduePayments()
	if out == nil {
		out = []model.Payment{}
	}
	return c.JSON(http.StatusOK, out)
}

// GetReceipt handles GET /v1/payments/:id/receipt and returns the
// printable HTML receipt.  Dangling plot or grave references render as
// "Unknown"; a missing payment is a 404.
func (h *FinanceHandler) GetReceipt(c echo.Context) error {
	p, err := h.Ledger.ByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	doc, err := h.Receipts.Render(p, h.Registry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render receipt"})
	}
	return c.HTML(http.StatusOK, doc)
}
