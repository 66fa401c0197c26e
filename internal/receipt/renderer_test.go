package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/marlenko/graveyard-management/internal/model"
)

// stubResolver resolves a fixed plot and grave and reports everything
// else as missing.
type stubResolver struct {
	plot  model.Plot
	grave model.Grave
}

func (s stubResolver) PlotByID(id string) (model.Plot, bool) {
	if id == s.plot.ID {
		return s.plot, true
	}
	return model.Plot{}, false
}

func (s stubResolver) GraveByID(id string) (model.Grave, bool) {
	if id == s.grave.ID {
		return s.grave, true
	}
	return model.Grave{}, false
}

func samplePayment() model.Payment {
	return model.Payment{
		ID:            "p-1",
		PayerName:     "John Smith",
		PayerEmail:    "john.smith@example.com",
		PayerPhone:    "555-0101",
		Amount:        2500,
		PaymentType:   model.TypePlotBooking,
		Status:        model.PaymentCompleted,
		PlotID:        "1",
		GraveID:       "1-5",
		Description:   "Plot A1 - Grave 5 Booking",
		PaymentDate:   time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		ReceiptNumber: "RCP-2024-0001",
	}
}

func TestRenderResolvedReferences(t *testing.T) {
	res := stubResolver{
		plot:  model.Plot{ID: "1", PlotNumber: "A1", Rows: 5, Columns: 10},
		grave: model.Grave{ID: "1-5", GraveNumber: "5", PlotID: "1", Status: model.GraveStatusAvailable},
	}
	doc, err := New().Render(samplePayment(), res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Receipt #RCP-2024-0001",
		"John Smith",
		"john.smith@example.com",
		"Plot Booking",   // enum formatted for display
		"Completed",      // status title-cased
		"Plot A1",        // resolved plot number
		"Grave #5",       // resolved grave number
		"$2500.00",
		"October 15, 2024",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderDanglingReferencesDegrade(t *testing.T) {
	// An empty resolver makes every reference dangle.
	doc, err := New().Render(samplePayment(), stubResolver{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(doc, "Unknown") {
		t.Error("dangling references did not render as Unknown")
	}
	// The description echoes "Plot A1", so check the label spans, not
	// the whole document.
	if strings.Contains(doc, ">Plot A1<") || strings.Contains(doc, ">Grave #5<") {
		t.Error("resolved label appeared for a dangling reference")
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	p := samplePayment()
	p.PlotID = ""
	p.GraveID = ""
	doc, err := New().Render(p, stubResolver{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(doc, "Plot &amp; Grave Information") {
		t.Error("plot/grave section rendered with no references")
	}
	// No due date on the sample, so the due date block is absent too.
	if strings.Contains(doc, "Due Date:") {
		t.Error("due date rendered without a due date")
	}
}

func TestRenderDueDate(t *testing.T) {
	p := samplePayment()
	due := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	p.DueDate = &due
	doc, err := New().Render(p, stubResolver{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(doc, "November 1, 2024") {
		t.Error("due date missing from document")
	}
}
