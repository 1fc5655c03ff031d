package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/phoenix-field/backend/internal/integration/sheets"
)

// SheetSource is an in-memory stand-in for the spreadsheet. Scenarios can
// replace individual sheets or force fetch failures; Reset restores the
// canned fixture dataset.
type SheetSource struct {
	mu   sync.Mutex
	rows map[string][][]string
	err  error
}

func NewSheetSource() *SheetSource {
	s := &SheetSource{}
	s.Reset()
	return s
}

func (s *SheetSource) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	rows, ok := s.rows[sheetName]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheetName)
	}
	return rows, nil
}

// SetRows replaces one sheet's raw rows, header included.
func (s *SheetSource) SetRows(sheetName string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[sheetName] = rows
}

// SetError makes every subsequent fetch fail until Reset.
func (s *SheetSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Reset restores the fixture dataset and clears any forced error.
func (s *SheetSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
	s.rows = fixtureRows()
}

// fixtureRows is a small but complete spreadsheet: four employees across two
// teams plus an owner, sales in two months, itinerary rows, and updates with
// wide date windows so scenarios do not depend on the wall clock.
func fixtureRows() map[string][][]string {
	return map[string][][]string{
		sheets.SheetLogins: {
			{"Name", "Email", "Password", "Title", "Team"},
			{"Sam Rivers", "sam@phoenixfield.test", "owner-pass", "Owner", ""},
			{"Jordan Blake", "jordan@phoenixfield.test", "lead-pass", "Team Lead", "KYT1"},
			{"Casey Lin", "casey@phoenixfield.test", "rep-pass", "Sales Representative", "KYT1"},
			{"Riley Poe", "riley@phoenixfield.test", "rep-pass", "Sales Representative", "KYT2"},
		},
		sheets.SheetSales: {
			{"Date", "Team", "Rep", "Email", "Client", "Sale Price", "Collected", "Merchant Fee", "Exit Cost", "Net", "%", "Commission", "Notes"},
			{"6/2/2025", "KYT1", "Casey Lin", "casey@phoenixfield.test", "Acme Travel", "$2,000.00", "$1,500.00", "$45.00", "$200.00", "$1,255.00", "10%", "$125.50", ""},
			{"6/9/2025", "KYT1", "Jordan Blake", "jordan@phoenixfield.test", "Globe Corp", "$3,000.00", "$2,400.00", "$60.00", "$300.00", "$2,040.00", "10%", "$204.00", ""},
			{"7/1/2025", "KYT2", "Riley Poe", "riley@phoenixfield.test", "Summit LLC", "$1,000.00", "$800.00", "$20.00", "$100.00", "$680.00", "10%", "$68.00", ""},
		},
		sheets.SheetFlights: {
			{"Name", "Email", "Airport", "W1 Date", "W1 Conf", "W1 ArrDep", "W1 Cost", "W2 Date", "Airport", "W2 Conf", "W2 ArrDep", "W2 Cost", "W3 Date", "Airport", "W3 Conf", "W3 ArrDep", "W3 Cost"},
			{"Casey Lin", "casey@phoenixfield.test", "JFK", "6/1", "AA123", "Arr 9:00 AM", "$250", "6/8", "JFK", "AA456", "Arr 9:30 AM", "$260", "", "", "", "", ""},
			{"Riley Poe", "riley@phoenixfield.test", "DEN", "6/1", "UA789", "Arr 11:00 AM", "$310", "", "", "", "", "", "", "", "", "", ""},
		},
		sheets.SheetRentalCars: {
			{"Name", "Email", "W1 Date", "W1 Info", "W1 Vendor", "W1 Conf", "W1 Pickup", "W2 Date", "W2 Info", "W2 Vendor", "W2 Conf", "W2 Pickup", "W3 Date", "W3 Info", "W3 Vendor", "W3 Conf", "W3 Pickup"},
			{"Casey Lin", "casey@phoenixfield.test", "6/1", "Midsize SUV", "Hertz", "H-9921", "Airport lot B", "", "", "", "", "", "", "", "", "", ""},
		},
		sheets.SheetHotelInfo: {
			{"Team", "W1 Date", "W1 Res", "W1 Hotel", "W1 Address", "W1 Food", "W1 Conf", "W1 Conf Address", "W2 Date", "W2 Res", "W2 Hotel", "W2 Address", "W2 Food", "W2 Conf", "W2 Conf Address", "W3 Date", "W3 Res", "W3 Hotel", "W3 Address", "W3 Food", "W3 Conf", "W3 Conf Address"},
			{"KYT1", "6/1", "R-1001", "Harbor Inn", "1 Dock St", "Breakfast included", "C-11", "9 Hall Ave", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
			{"KYT2", "6/1", "R-2002", "Summit Lodge", "5 Peak Rd", "", "C-22", "12 Ridge Way", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		},
		sheets.SheetUpdates: {
			{"ID", "Message", "Target", "Start", "End"},
			{"u1", "Welcome to the summer tour", "All", "1/1/2025", "12/31/2030"},
			{"u2", "KYT1 standup moved to 8 AM", "KYT1", "1/1/2025", "12/31/2030"},
			{"u3", "Expired notice", "All", "1/1/2020", "12/31/2020"},
		},
	}
}
