package sheets

import (
	"fmt"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// Row is one raw sheet row. Spreadsheets routinely trim trailing empty
// cells, so all access goes through cell, which pads with empty strings.
type Row []string

// cell returns the value at the given 0-indexed column, or "" when the row
// is shorter than the schema expects.
func (r Row) cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Mapper decodes raw rows into domain entities using the fixed column
// contracts of each sheet. Header rows are the caller's problem; every
// method here receives data rows only.
type Mapper struct {
	norm Normalizer
}

// NewMapper creates a mapper whose date handling assumes the given
// reference year for bare M/D cells.
func NewMapper(referenceYear int) *Mapper {
	return &Mapper{norm: NewNormalizer(referenceYear)}
}

// MapEmployee decodes one Logins row.
// Columns: 0=Name, 1=Email, 2=Password, 3=Title/Role, 4=Team.
// A row missing both name and email is a blank row and is discarded.
func (m *Mapper) MapEmployee(r Row) (entity.Employee, bool) {
	emp := entity.Employee{
		Name:     r.cell(0),
		Email:    r.cell(1),
		Password: r.cell(2),
		Role:     r.cell(3),
		Team:     r.cell(4),
	}
	if emp.Name == "" && emp.Email == "" {
		return entity.Employee{}, false
	}
	return emp, true
}

// MapSale decodes one Sales row.
// Columns: 0=Date, 1=Team, 2=Rep Name, 3=Rep Email, 4=Client, 5=Sale Price,
// 6=Collected, 7=Merchant Fee, 8=Exit Cost, 9=Net, 10=Percentage,
// 11=Commission, 12=Notes.
// A row missing both rep name and commission is a blank/trailing row and is
// discarded; a named rep with an empty commission cell is a legitimate
// zero-commission record and is kept.
func (m *Mapper) MapSale(r Row) (entity.SaleTransaction, bool) {
	if r.cell(2) == "" && r.cell(11) == "" {
		return entity.SaleTransaction{}, false
	}

	tx := entity.SaleTransaction{
		RawDate:     m.norm.DisplayDate(r.cell(0)),
		Team:        r.cell(1),
		RepName:     r.cell(2),
		RepEmail:    r.cell(3),
		Client:      r.cell(4),
		SalePrice:   m.norm.ParseCurrency(r.cell(5)),
		Collected:   m.norm.ParseCurrency(r.cell(6)),
		MerchantFee: m.norm.ParseCurrency(r.cell(7)),
		ExitCost:    m.norm.ParseCurrency(r.cell(8)),
		Net:         m.norm.ParseCurrency(r.cell(9)),
		Percentage:  r.cell(10),
		Commission:  m.norm.ParseCurrency(r.cell(11)),
		Notes:       r.cell(12),
	}
	tx.Date = m.norm.ParseOptionalDate(r.cell(0))
	return tx, true
}

// MapFlight decodes one Flights row.
// Columns: 0=Name, 1=Email, 2=Airport, then week blocks
// W1: 3=Date, 4=Conf, 5=ArrDep, 6=Cost
// W2: 7=Date, 9=Conf, 10=ArrDep, 11=Cost (8 repeats the airport, skipped)
// W3: 12=Date, 14=Conf, 15=ArrDep, 16=Cost (13 skipped likewise).
func (m *Mapper) MapFlight(r Row) (entity.Flight, bool) {
	if r.cell(0) == "" && r.cell(1) == "" {
		return entity.Flight{}, false
	}
	f := entity.Flight{
		RepName:     r.cell(0),
		RepEmail:    r.cell(1),
		AirportCode: r.cell(2),
	}
	// Date column of each block, then the offset of Conf relative to it.
	// Weeks 2 and 3 carry a repeated airport column between Date and Conf.
	blocks := [entity.TripWeeks]struct{ date, conf int }{
		{3, 4}, {7, 9}, {12, 14},
	}
	for week, b := range blocks {
		f.Weeks[week] = entity.FlightLeg{
			FlyDate:          m.norm.DisplayDate(r.cell(b.date)),
			Confirmation:     r.cell(b.conf),
			ArrivalDeparture: r.cell(b.conf + 1),
			Cost:             r.cell(b.conf + 2),
		}
	}
	return f, true
}

// MapRentalCar decodes one Rental Cars row.
// Columns: 0=Name, 1=Email, then three contiguous 5-column week blocks
// (Date, Info, Vendor, Conf, Pickup) starting at 2, 7, 12.
func (m *Mapper) MapRentalCar(r Row) (entity.RentalCar, bool) {
	if r.cell(0) == "" && r.cell(1) == "" {
		return entity.RentalCar{}, false
	}
	rc := entity.RentalCar{
		RepName:  r.cell(0),
		RepEmail: r.cell(1),
	}
	for week := 0; week < entity.TripWeeks; week++ {
		base := 2 + week*5
		rc.Weeks[week] = entity.RentalCarLeg{
			Date:         m.norm.DisplayDate(r.cell(base)),
			Info:         r.cell(base + 1),
			Vendor:       r.cell(base + 2),
			Confirmation: r.cell(base + 3),
			PickupReturn: r.cell(base + 4),
		}
	}
	return rc, true
}

// MapHotel decodes one Hotel Info row.
// Columns: 0=Team, then three contiguous 7-column week blocks (Date,
// Reservation, Name, Address, Food, ConfConfirmation, ConfAddress)
// starting at 1, 8, 15.
func (m *Mapper) MapHotel(r Row) (entity.HotelStay, bool) {
	if r.cell(0) == "" {
		return entity.HotelStay{}, false
	}
	h := entity.HotelStay{Team: r.cell(0)}
	for week := 0; week < entity.TripWeeks; week++ {
		base := 1 + week*7
		h.Weeks[week] = entity.HotelWeek{
			Date:                   m.norm.DisplayDate(r.cell(base)),
			Reservation:            r.cell(base + 1),
			HotelName:              r.cell(base + 2),
			Address:                r.cell(base + 3),
			Food:                   r.cell(base + 4),
			ConferenceConfirmation: r.cell(base + 5),
			ConferenceAddress:      r.cell(base + 6),
		}
	}
	return h, true
}

// MapUpdate decodes one Updates row.
// Columns: 0=ID, 1=Message, 2=Target, 3=StartDate, 4=EndDate.
// A row with no message is discarded. Missing IDs get a positional one so
// clients can still track dismissals; a missing target addresses everyone.
func (m *Mapper) MapUpdate(r Row, index int) (entity.Update, bool) {
	if r.cell(1) == "" {
		return entity.Update{}, false
	}
	u := entity.Update{
		ID:        r.cell(0),
		Message:   r.cell(1),
		Target:    r.cell(2),
		StartDate: m.norm.ParseOptionalDate(r.cell(3)),
		EndDate:   m.norm.ParseOptionalDate(r.cell(4)),
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("update-%d", index)
	}
	if u.Target == "" {
		u.Target = entity.UpdateTargetAll
	}
	return u, true
}
