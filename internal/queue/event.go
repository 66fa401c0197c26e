// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a payment is added to the
// ledger.  It carries enough context for downstream consumers to log
// or notify without reading the in-process ledger.
type PaymentRecordedEvent struct {
	PaymentID     string  `json:"payment_id"`
	ReceiptNumber string  `json:"receipt_number"`
	PayerName     string  `json:"payer_name"`
	Amount        float64 `json:"amount"`
	PaymentType   string  `json:"payment_type"`
	Status        string  `json:"status"`
	PlotID        string  `json:"plot_id,omitempty"`
	GraveID       string  `json:"grave_id,omitempty"`
	RecordedAt    string  `json:"recorded_at"`
}
