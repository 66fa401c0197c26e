package model

import "time"

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentOverdue   PaymentStatus = "overdue"
)

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentCompleted, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

// PaymentType categorizes what a payment was made for.
type PaymentType string

const (
	TypePlotBooking   PaymentType = "plot_booking"
	TypeBurialService PaymentType = "burial_service"
	TypeMaintenance   PaymentType = "maintenance"
	TypeOther         PaymentType = "other"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case TypePlotBooking, TypeBurialService, TypeMaintenance, TypeOther:
		return true
	}
	return false
}

// Payment is a single financial transaction in the ledger.  The plot,
// grave and burial-record references are weak links: they are resolved
// at render time and may dangle after the referenced entity is removed.
//
// ReceiptNumber is assigned by the store on insert and formatted as
// RCP-<year>-<sequence> with a zero-padded 4-digit sequence.
type Payment struct {
	ID             string        `json:"id"`
	PayerName      string        `json:"payerName"`
	PayerEmail     string        `json:"payerEmail"`
	PayerPhone     string        `json:"payerPhone"`
	Amount         float64       `json:"amount"`
	PaymentType    PaymentType   `json:"paymentType"`
	Status         PaymentStatus `json:"status"`
	PlotID         string        `json:"plotId,omitempty"`
	GraveID        string        `json:"graveId,omitempty"`
	BurialRecordID string        `json:"burialRecordId,omitempty"`
	Description    string        `json:"description"`
	PaymentDate    time.Time     `json:"paymentDate"`
	DueDate        *time.Time    `json:"dueDate,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	ReceiptNumber  string        `json:"receiptNumber"`
}
