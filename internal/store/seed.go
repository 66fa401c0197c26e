package store

import (
	"time"

	"github.com/marlenko/graveyard-management/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedMapStore installs the default spatial data: two graveyard maps,
// two plot maps under gm-1 and three grave maps under pm-1.  IDs are
// fixed so seeded cross-references stay stable across restarts.
func SeedMapStore(s *MapStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graveyardMaps = []model.GraveyardMap{
		{
			ID:          "gm-1",
			GraveyardID: "1",
			Center:      model.GPSCoordinate{Latitude: 40.7128, Longitude: -74.0060},
			ZoomLevel:   3,
			Bounds:      model.Bounds{North: 40.7228, South: 40.7028, East: -74.0000, West: -74.0120},
			CreatedAt:   date(2024, time.January, 15),
		},
		{
			ID:          "gm-2",
			GraveyardID: "2",
			Center:      model.GPSCoordinate{Latitude: 34.0522, Longitude: -118.2437},
			ZoomLevel:   3,
			Bounds:      model.Bounds{North: 34.0622, South: 34.0422, East: -118.2337, West: -118.2537},
			CreatedAt:   date(2024, time.February, 20),
		},
	}
	s.plotMaps = []model.PlotMap{
		{
			ID:             "pm-1",
			PlotID:         "1",
			GraveyardMapID: "gm-1",
			TopLeft:        model.GPSCoordinate{Latitude: 40.7180, Longitude: -74.0100},
			TopRight:       model.GPSCoordinate{Latitude: 40.7180, Longitude: -74.0050},
			BottomLeft:     model.GPSCoordinate{Latitude: 40.7120, Longitude: -74.0100},
			BottomRight:    model.GPSCoordinate{Latitude: 40.7120, Longitude: -74.0050},
			Position:       model.ScreenPoint{X: 50, Y: 50},
			Size:           model.ScreenSize{Width: 150, Height: 200},
			CreatedAt:      date(2024, time.January, 16),
		},
		{
			ID:             "pm-2",
			PlotID:         "2",
			GraveyardMapID: "gm-1",
			TopLeft:        model.GPSCoordinate{Latitude: 40.7180, Longitude: -74.0020},
			TopRight:       model.GPSCoordinate{Latitude: 40.7180, Longitude: 74.0030},
			BottomLeft:     model.GPSCoordinate{Latitude: 40.7120, Longitude: -74.0020},
			BottomRight:    model.GPSCoordinate{Latitude: 40.7120, Longitude: -74.0030},
			Position:       model.ScreenPoint{X: 220, Y: 50},
			Size:           model.ScreenSize{Width: 120, Height: 180},
			CreatedAt:      date(2024, time.January, 17),
		},
	}
	s.graveMaps = []model.GraveMap{
		{
			ID:        "grm-1",
			GraveID:   "1-1",
			PlotMapID: "pm-1",
			Position:  model.GPSCoordinate{Latitude: 40.7175, Longitude: -74.0095},
			GridCell:  model.GridCell{Row: 0, Column: 0},
			Size:      model.ScreenSize{Width: 20, Height: 25},
			CreatedAt: date(2024, time.January, 16),
		},
		{
			ID:        "grm-2",
			GraveID:   "1-2",
			PlotMapID: "pm-1",
			Position:  model.GPSCoordinate{Latitude: 40.7175, Longitude: -74.0090},
			GridCell:  model.GridCell{Row: 0, Column: 1},
			Size:      model.ScreenSize{Width: 20, Height: 25},
			CreatedAt: date(2024, time.January, 16),
		},
		{
			ID:        "grm-3",
			GraveID:   "1-5",
			PlotMapID: "pm-1",
			Position:  model.GPSCoordinate{Latitude: 40.7160, Longitude: -74.0095},
			GridCell:  model.GridCell{Row: 1, Column: 0},
			Size:      model.ScreenSize{Width: 20, Height: 25},
			CreatedAt: date(2024, time.January, 16),
		},
	}
}

// SeedFinanceStore installs the default ledger of four payments with
// statuses completed/completed/pending/overdue and positions the
// receipt counter at the next free sequence.
func SeedFinanceStore(s *FinanceStore) {
	now := time.Now().UTC()
	due := now.Add(7 * 24 * time.Hour)
	octDue := date(2024, time.October, 15)
	s.seed([]model.Payment{
		{
			ID:            "1",
			PayerName:     "John Smith",
			PayerEmail:    "john.smith@example.com",
			PayerPhone:    "555-0101",
			Amount:        2500.00,
			PaymentType:   model.TypePlotBooking,
			Status:        model.PaymentCompleted,
			PlotID:        "1",
			GraveID:       "1-5",
			Description:   "Plot A1 - Grave 5 Booking",
			PaymentDate:   date(2024, time.October, 15),
			CreatedAt:     date(2024, time.October, 15),
			ReceiptNumber: "RCP-2024-0001",
		},
		{
			ID:             "2",
			PayerName:      "Mary Johnson",
			PayerEmail:     "mary.j@example.com",
			PayerPhone:     "555-0102",
			Amount:         3500.00,
			PaymentType:    model.TypeBurialService,
			Status:         model.PaymentCompleted,
			PlotID:         "1",
			GraveID:        "1-2",
			BurialRecordID: "2",
			Description:    "Burial Service for Mary Johnson",
			PaymentDate:    date(2024, time.October, 21),
			CreatedAt:      date(2024, time.October, 21),
			ReceiptNumber:  "RCP-2024-0002",
		},
		{
			ID:            "3",
			PayerName:     "Robert Davis",
			PayerEmail:    "r.davis@example.com",
			PayerPhone:    "555-0103",
			Amount:        1500.00,
			PaymentType:   model.TypePlotBooking,
			Status:        model.PaymentPending,
			PlotID:        "2",
			GraveID:       "2-8",
			Description:   "Plot A2 - Grave 8 Booking",
			PaymentDate:   now,
			DueDate:       &due,
			CreatedAt:     now,
			ReceiptNumber: "RCP-2024-0003",
		},
		{
			ID:            "4",
			PayerName:     "Sarah Wilson",
			PayerEmail:    "s.wilson@example.com",
			PayerPhone:    "555-0104",
			Amount:        800.00,
			PaymentType:   model.TypeMaintenance,
			Status:        model.PaymentOverdue,
			PlotID:        "1",
			Description:   "Annual Maintenance Fee",
			PaymentDate:   date(2024, time.September, 15),
			DueDate:       &octDue,
			CreatedAt:     date(2024, time.September, 15),
			ReceiptNumber: "RCP-2024-0004",
		},
	})
}

// SeedRegistry builds the read-only reference data resolving every
// foreign key used by the seeded maps and payments.
func SeedRegistry() *Registry {
	graveyards := []model.Graveyard{
		{ID: "1", Name: "Greenwood Memorial Park"},
		{ID: "2", Name: "Pacific View Cemetery"},
	}
	plots := []model.Plot{
		{ID: "1", PlotNumber: "A1", Rows: 5, Columns: 10},
		{ID: "2", PlotNumber: "A2", Rows: 4, Columns: 8},
	}
	graves := []model.Grave{
		{ID: "1-1", GraveNumber: "1", PlotID: "1", Status: "occupied"},
		{ID: "1-2", GraveNumber: "2", PlotID: "1", Status: "occupied"},
		{ID: "1-5", GraveNumber: "5", PlotID: "1", Status: model.GraveStatusAvailable},
		{ID: "2-8", GraveNumber: "8", PlotID: "2", Status: model.GraveStatusAvailable},
	}
	records := []model.BurialRecord{
		{ID: "1", Name: "Arthur Pembroke"},
		{ID: "2", Name: "Mary Johnson"},
		{ID: "3", Name: "Eleanor Voss"},
	}
	return NewRegistry(graveyards, plots, graves, records)
}
