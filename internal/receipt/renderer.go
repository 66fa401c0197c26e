// Package receipt renders a payment into a fixed-layout printable HTML
// document.  Rendering is a pure read path: it resolves the payment's
// optional plot and grave references for display and never mutates
// state.  Dangling references degrade to "Unknown" rather than failing.
package receipt

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/marlenko/graveyard-management/internal/model"
)

// Resolver supplies the registry lookups the renderer needs.
type Resolver interface {
	PlotByID(id string) (model.Plot, bool)
	GraveByID(id string) (model.Grave, bool)
}

// Renderer builds receipt documents.
type Renderer struct {
	tmpl *template.Template
}

// New parses the receipt template.  The template is fixed at build
// time, so a parse failure is a programming error and panics.
func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("receipt").Parse(receiptHTML))}
}

type receiptData struct {
	Payment     model.Payment
	TypeLabel   string
	StatusLabel string
	PlotLabel   string
	GraveLabel  string
	GeneratedOn string
}

// Render produces the HTML document for a payment.
func (r *Renderer) Render(p model.Payment, res Resolver) (string, error) {
	data := receiptData{
		Payment:     p,
		TypeLabel:   formatPaymentType(p.PaymentType),
		StatusLabel: titleCase(string(p.Status)),
		GeneratedOn: time.Now().Format("January 2, 2006"),
	}
	if p.PlotID != "" {
		if plot, ok := res.PlotByID(p.PlotID); ok {
			data.PlotLabel = "Plot " + plot.PlotNumber
		} else {
			data.PlotLabel = "Unknown"
		}
	}
	if p.GraveID != "" {
		if grave, ok := res.GraveByID(p.GraveID); ok {
			data.GraveLabel = "Grave #" + grave.GraveNumber
		} else {
			data.GraveLabel = "Unknown"
		}
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatPaymentType turns an enum value like "plot_booking" into
// "Plot Booking" for display.
func formatPaymentType(t model.PaymentType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const receiptHTML = `<html>
  <head>
    <title>Receipt {{.Payment.ReceiptNumber}}</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 40px; }
      .header { text-align: center; margin-bottom: 30px; }
      .title { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
      .receipt-number { color: #666; }
      .section { margin: 20px 0; padding: 15px; border: 1px solid #ddd; }
      .label { font-weight: bold; display: inline-block; width: 150px; }
      .value { display: inline-block; }
      .amount { font-size: 28px; font-weight: bold; color: #059669; text-align: center; margin: 20px 0; }
      .footer { text-align: center; color: #888; font-size: 12px; margin-top: 30px; }
    </style>
  </head>
  <body>
    <div class="header">
      <div class="title">Graveyard Management System</div>
      <div>Payment Receipt</div>
      <div class="receipt-number">Receipt #{{.Payment.ReceiptNumber}}</div>
    </div>
    <div class="section">
      <h3>Payer Information</h3>
      <div><span class="label">Name:</span><span class="value">{{.Payment.PayerName}}</span></div>
      <div><span class="label">Email:</span><span class="value">{{.Payment.PayerEmail}}</span></div>
      <div><span class="label">Phone:</span><span class="value">{{.Payment.PayerPhone}}</span></div>
    </div>
    <div class="section">
      <h3>Payment Details</h3>
      <div><span class="label">Payment Date:</span><span class="value">{{.Payment.PaymentDate.Format "January 2, 2006"}}</span></div>
      <div><span class="label">Payment Type:</span><span class="value">{{.TypeLabel}}</span></div>
      <div><span class="label">Status:</span><span class="value">{{.StatusLabel}}</span></div>
    </div>
    {{if or .PlotLabel .GraveLabel}}
    <div class="section">
      <h3>Plot &amp; Grave Information</h3>
      {{if .PlotLabel}}<div><span class="label">Plot:</span><span class="value">{{.PlotLabel}}</span></div>{{end}}
      {{if .GraveLabel}}<div><span class="label">Grave:</span><span class="value">{{.GraveLabel}}</span></div>{{end}}
    </div>
    {{end}}
    <div class="section">
      <h3>Description</h3>
      <div>{{.Payment.Description}}</div>
    </div>
    <div class="amount">${{printf "%.2f" .Payment.Amount}}</div>
    {{if .Payment.DueDate}}
    <div class="section">
      <div><span class="label">Due Date:</span><span class="value">{{.Payment.DueDate.Format "January 2, 2006"}}</span></div>
    </div>
    {{end}}
    <div class="footer">
      <p>This is an official receipt from Graveyard Management System</p>
      <p>Generated on {{.GeneratedOn}}</p>
      <p>Thank you for your payment</p>
    </div>
  </body>
</html>
`
