package sheets

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMapper_MapEmployee(t *testing.T) {
	m := NewMapper(2025)

	t.Run("full row", func(t *testing.T) {
		emp, ok := m.MapEmployee(Row{"Jordan Reed", "jordan@phoenix.test", "secret", "Team Lead KYT2", "KYT2"})
		if !ok {
			t.Fatal("expected row to map")
		}
		if emp.Name != "Jordan Reed" || emp.Email != "jordan@phoenix.test" || emp.Team != "KYT2" {
			t.Errorf("unexpected employee: %+v", emp)
		}
	})

	t.Run("short row is padded", func(t *testing.T) {
		emp, ok := m.MapEmployee(Row{"Jordan Reed"})
		if !ok {
			t.Fatal("expected row to map")
		}
		if emp.Email != "" || emp.Team != "" {
			t.Errorf("expected empty padding, got %+v", emp)
		}
	})

	t.Run("blank row discarded", func(t *testing.T) {
		if _, ok := m.MapEmployee(Row{"", "", "pw", "Rep", "KYT1"}); ok {
			t.Error("expected row without name and email to be discarded")
		}
	})
}

func TestMapper_MapSale(t *testing.T) {
	m := NewMapper(2025)

	fullRow := Row{
		"Date(2025,0,15)", "KYT1", "Casey Lin", "casey@phoenix.test", "Acme Travel",
		"$2,000", "$1,500", "$45", "$100", "$1,355", "10%", "$135.50", "deposit pending",
	}

	t.Run("full row", func(t *testing.T) {
		tx, ok := m.MapSale(fullRow)
		if !ok {
			t.Fatal("expected row to map")
		}
		if tx.RawDate != "1/15" {
			t.Errorf("RawDate = %q, want %q", tx.RawDate, "1/15")
		}
		if tx.Date == nil {
			t.Fatal("expected parsed date")
		}
		if got := tx.Commission; !got.Equal(decimal.RequireFromString("135.5")) {
			t.Errorf("Commission = %s", got)
		}
		if got := tx.Net; !got.Equal(decimal.RequireFromString("1355")) {
			t.Errorf("Net = %s", got)
		}
		if tx.Percentage != "10%" || tx.Notes != "deposit pending" {
			t.Errorf("passthrough fields wrong: %+v", tx)
		}
	})

	t.Run("discarded only when rep name and commission both empty", func(t *testing.T) {
		if _, ok := m.MapSale(Row{"1/15", "KYT1", "", "", "", "", "", "", "", "", "", "", ""}); ok {
			t.Error("expected blank row to be discarded")
		}
		if _, ok := m.MapSale(Row{"1/15", "KYT1", "Casey Lin"}); !ok {
			t.Error("named rep with empty commission must be kept")
		}
		if _, ok := m.MapSale(Row{"1/15", "KYT1", "", "", "", "", "", "", "", "", "", "$50", ""}); !ok {
			t.Error("commission without name must be kept")
		}
	})

	t.Run("unparseable money cells become zero", func(t *testing.T) {
		tx, ok := m.MapSale(Row{"1/15", "KYT1", "Casey Lin", "", "", "tbd", "", "", "", "n/a", "", "pending", ""})
		if !ok {
			t.Fatal("expected row to map")
		}
		if !tx.SalePrice.IsZero() || !tx.Net.IsZero() || !tx.Commission.IsZero() {
			t.Errorf("expected zeroed amounts, got %+v", tx)
		}
	})

	t.Run("unparseable date kept as absent", func(t *testing.T) {
		tx, ok := m.MapSale(Row{"soon", "KYT1", "Casey Lin", "", "", "", "", "", "", "", "", "$10", ""})
		if !ok {
			t.Fatal("expected row to map")
		}
		if tx.Date != nil {
			t.Errorf("expected nil date, got %v", tx.Date)
		}
		if tx.RawDate != "soon" {
			t.Errorf("RawDate = %q", tx.RawDate)
		}
	})
}

func TestMapper_MapFlight(t *testing.T) {
	m := NewMapper(2025)

	row := Row{
		"Casey Lin", "casey@phoenix.test", "SDF",
		"Date(2025,5,1)", "ABC123", "10:05 AM / 2:40 PM", "$310",
		"Date(2025,5,8)", "SDF", "DEF456", "9:15 AM / 1:10 PM", "$295",
		"Date(2025,5,15)", "SDF", "GHI789", "8:00 AM / 12:30 PM", "$280",
	}

	f, ok := m.MapFlight(row)
	if !ok {
		t.Fatal("expected row to map")
	}
	if f.AirportCode != "SDF" {
		t.Errorf("AirportCode = %q", f.AirportCode)
	}
	if f.Weeks[0].FlyDate != "6/1" || f.Weeks[0].Confirmation != "ABC123" {
		t.Errorf("week 1 wrong: %+v", f.Weeks[0])
	}
	// Weeks 2 and 3 carry a repeated airport column that must be skipped.
	if f.Weeks[1].Confirmation != "DEF456" || f.Weeks[1].Cost != "$295" {
		t.Errorf("week 2 wrong: %+v", f.Weeks[1])
	}
	if f.Weeks[2].FlyDate != "6/15" || f.Weeks[2].ArrivalDeparture != "8:00 AM / 12:30 PM" {
		t.Errorf("week 3 wrong: %+v", f.Weeks[2])
	}

	if _, ok := m.MapFlight(Row{"", "", "SDF"}); ok {
		t.Error("expected row without name and email to be discarded")
	}
}

func TestMapper_MapRentalCar(t *testing.T) {
	m := NewMapper(2025)

	row := Row{
		"Casey Lin", "casey@phoenix.test",
		"Date(2025,5,1)", "SUV", "Hertz", "R-111", "airport / airport",
		"Date(2025,5,8)", "Sedan", "Avis", "R-222", "airport / hotel",
		"Date(2025,5,15)", "SUV", "Hertz", "R-333", "hotel / airport",
	}

	rc, ok := m.MapRentalCar(row)
	if !ok {
		t.Fatal("expected row to map")
	}
	if rc.Weeks[1].Vendor != "Avis" || rc.Weeks[1].Confirmation != "R-222" {
		t.Errorf("week 2 wrong: %+v", rc.Weeks[1])
	}
	if rc.Weeks[2].Date != "6/15" {
		t.Errorf("week 3 date = %q", rc.Weeks[2].Date)
	}
}

func TestMapper_MapHotel(t *testing.T) {
	m := NewMapper(2025)

	row := Row{
		"KYT1",
		"6/1", "H-1", "Hampton Inn", "100 Main St", "breakfast", "C-1", "200 Expo Way",
		"6/8", "H-2", "Marriott", "300 Oak Ave", "none", "C-2", "400 Hall Rd",
		"6/15", "H-3", "Hilton", "500 Elm St", "dinner", "C-3", "600 Fair Dr",
	}

	h, ok := m.MapHotel(row)
	if !ok {
		t.Fatal("expected row to map")
	}
	if h.Team != "KYT1" {
		t.Errorf("Team = %q", h.Team)
	}
	if h.Weeks[1].HotelName != "Marriott" || h.Weeks[2].ConferenceAddress != "600 Fair Dr" {
		t.Errorf("weeks wrong: %+v", h.Weeks)
	}

	if _, ok := m.MapHotel(Row{"", "6/1"}); ok {
		t.Error("expected row without team to be discarded")
	}
}

func TestMapper_MapUpdate(t *testing.T) {
	m := NewMapper(2025)

	t.Run("defaults", func(t *testing.T) {
		u, ok := m.MapUpdate(Row{"", "Conference moved to Hall B", "", "", ""}, 3)
		if !ok {
			t.Fatal("expected row to map")
		}
		if u.ID != "update-3" {
			t.Errorf("ID = %q", u.ID)
		}
		if u.Target != "All" {
			t.Errorf("Target = %q", u.Target)
		}
		if u.StartDate != nil || u.EndDate != nil {
			t.Error("expected open date window")
		}
	})

	t.Run("date window parsed", func(t *testing.T) {
		u, ok := m.MapUpdate(Row{"u1", "Submit expenses by Friday", "KYT1", "2025-06-01", "2025-06-06"}, 0)
		if !ok {
			t.Fatal("expected row to map")
		}
		if u.StartDate == nil || u.EndDate == nil {
			t.Fatal("expected bounded window")
		}
		if u.Target != "KYT1" {
			t.Errorf("Target = %q", u.Target)
		}
	})

	t.Run("no message discarded", func(t *testing.T) {
		if _, ok := m.MapUpdate(Row{"u2", "", "All", "", ""}, 0); ok {
			t.Error("expected row without message to be discarded")
		}
	})
}
