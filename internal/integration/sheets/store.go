package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// Sheet names inside the shared spreadsheet.
const (
	SheetLogins     = "Logins"
	SheetFlights    = "Flights"
	SheetRentalCars = "Rental Cars"
	SheetHotelInfo  = "Hotel Info"
	SheetSales      = "Sales"
	SheetUpdates    = "Updates"
)

// SheetSource fetches the raw rows of a named sheet, header row included.
// GvizClient and APIClient both implement it.
type SheetSource interface {
	FetchRows(ctx context.Context, sheetName string) ([][]string, error)
}

// Snapshot is one fully-materialized read of every sheet. Snapshots are
// immutable once applied; all derived state downstream is recomputed from
// whichever snapshot is current.
type Snapshot struct {
	Generation uint64
	FetchedAt  time.Time

	Employees  []entity.Employee
	Sales      []entity.SaleTransaction
	Flights    []entity.Flight
	RentalCars []entity.RentalCar
	Hotels     []entity.HotelStay
	Updates    []entity.Update
}

// Store serves the latest complete snapshot of the spreadsheet and rebuilds
// it whole on refresh. Concurrent refreshes may race; each one takes a
// monotonically increasing generation when it starts, and a finished fetch
// is applied only if nothing newer has been applied first, so a slow stale
// fetch can never clobber a newer dataset.
type Store struct {
	source SheetSource
	mapper *Mapper

	gen atomic.Uint64

	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a snapshot store over the given source.
func NewStore(source SheetSource, mapper *Mapper) *Store {
	return &Store{source: source, mapper: mapper}
}

// Refresh fetches every sheet and atomically replaces the current snapshot.
// On any fetch failure the previous snapshot is left untouched and the
// error is surfaced; partial datasets are never applied. A result that
// loses the race to a newer refresh is discarded and reported as
// ErrStaleFetch.
func (s *Store) Refresh(ctx context.Context) error {
	gen := s.gen.Add(1)

	snap, err := s.fetchAll(ctx)
	if err != nil {
		return domainerror.NewSheetError(
			domainerror.ErrCodeSheetFetchFailed,
			"failed to refresh spreadsheet data",
			err,
		)
	}
	snap.Generation = gen
	snap.FetchedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap != nil && s.snap.Generation >= gen {
		return domainerror.ErrStaleFetch
	}
	s.snap = snap

	slog.Info("Sheet snapshot applied",
		"generation", snap.Generation,
		"employees", len(snap.Employees),
		"sales", len(snap.Sales),
		"flights", len(snap.Flights),
		"rental_cars", len(snap.RentalCars),
		"hotels", len(snap.Hotels),
		"updates", len(snap.Updates),
	)
	return nil
}

// fetchAll materializes a complete snapshot or fails.
func (s *Store) fetchAll(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	rows, err := s.dataRows(ctx, SheetLogins)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if emp, ok := s.mapper.MapEmployee(r); ok {
			snap.Employees = append(snap.Employees, emp)
		}
	}

	rows, err = s.dataRows(ctx, SheetSales)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if tx, ok := s.mapper.MapSale(r); ok {
			snap.Sales = append(snap.Sales, tx)
		}
	}

	rows, err = s.dataRows(ctx, SheetFlights)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if f, ok := s.mapper.MapFlight(r); ok {
			snap.Flights = append(snap.Flights, f)
		}
	}

	rows, err = s.dataRows(ctx, SheetRentalCars)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if rc, ok := s.mapper.MapRentalCar(r); ok {
			snap.RentalCars = append(snap.RentalCars, rc)
		}
	}

	rows, err = s.dataRows(ctx, SheetHotelInfo)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if h, ok := s.mapper.MapHotel(r); ok {
			snap.Hotels = append(snap.Hotels, h)
		}
	}

	rows, err = s.dataRows(ctx, SheetUpdates)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if u, ok := s.mapper.MapUpdate(r, i); ok {
			snap.Updates = append(snap.Updates, u)
		}
	}

	return snap, nil
}

// dataRows fetches a sheet and strips the header row.
func (s *Store) dataRows(ctx context.Context, sheetName string) ([]Row, error) {
	raw, err := s.source.FetchRows(ctx, sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}
	rows := make([]Row, 0, len(raw)-1)
	for _, r := range raw[1:] {
		rows = append(rows, Row(r))
	}
	return rows, nil
}

// snapshot returns the current snapshot, fetching once if none has ever
// been applied. A failed first fetch propagates; empty data is never
// silently substituted for an unreachable source.
func (s *Store) snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	if err := s.Refresh(ctx); err != nil && err != domainerror.ErrStaleFetch {
		return nil, err
	}

	s.mu.RLock()
	snap = s.snap
	s.mu.RUnlock()
	if snap == nil {
		return nil, domainerror.NewSheetError(
			domainerror.ErrCodeSheetUnavailable,
			"no sheet snapshot available",
			domainerror.ErrNoSnapshot,
		)
	}
	return snap, nil
}

// Loaded reports whether any snapshot has been applied yet.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

// Employees returns the roster from the current snapshot.
func (s *Store) Employees(ctx context.Context) ([]entity.Employee, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Employees, nil
}

// Sales returns the sales transactions from the current snapshot.
func (s *Store) Sales(ctx context.Context) ([]entity.SaleTransaction, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Sales, nil
}

// Flights returns the flight rows from the current snapshot.
func (s *Store) Flights(ctx context.Context) ([]entity.Flight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Flights, nil
}

// RentalCars returns the rental car rows from the current snapshot.
func (s *Store) RentalCars(ctx context.Context) ([]entity.RentalCar, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.RentalCars, nil
}

// Hotels returns the hotel rows from the current snapshot.
func (s *Store) Hotels(ctx context.Context) ([]entity.HotelStay, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Hotels, nil
}

// Updates returns the announcements from the current snapshot.
func (s *Store) Updates(ctx context.Context) ([]entity.Update, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Updates, nil
}
