// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// SheetStore serves the latest complete snapshot of the company spreadsheet.
// Readers always see a single consistent snapshot; Refresh replaces the
// whole dataset atomically and stale in-flight fetches are discarded.
type SheetStore interface {
	// Employees returns the roster (Logins sheet).
	Employees(ctx context.Context) ([]entity.Employee, error)

	// Sales returns the normalized sales transactions in source order.
	Sales(ctx context.Context) ([]entity.SaleTransaction, error)

	// Flights returns the flight itinerary rows.
	Flights(ctx context.Context) ([]entity.Flight, error)

	// RentalCars returns the rental car itinerary rows.
	RentalCars(ctx context.Context) ([]entity.RentalCar, error)

	// Hotels returns the per-team hotel rows.
	Hotels(ctx context.Context) ([]entity.HotelStay, error)

	// Updates returns the announcements.
	Updates(ctx context.Context) ([]entity.Update, error)

	// Refresh refetches every sheet and replaces the snapshot. It returns
	// a recoverable error on fetch failure, leaving the previous snapshot
	// in place.
	Refresh(ctx context.Context) error
}
