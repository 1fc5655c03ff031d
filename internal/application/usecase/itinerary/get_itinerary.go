// Package itinerary contains the travel itinerary use cases.
package itinerary

import (
	"context"
	"strings"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// GetItineraryInput represents the input for fetching an itinerary.
type GetItineraryInput struct {
	// Actor is the effective viewer.
	Actor entity.ActorProfile
	// Week selects the trip week (1-based). Zero means all weeks.
	Week int
}

// GetItineraryOutput represents the role-scoped itinerary.
type GetItineraryOutput struct {
	Week       int
	Flights    []entity.Flight
	RentalCars []entity.RentalCar
	Hotels     []entity.HotelStay
}

// GetItineraryUseCase serves flights, rental cars, and hotel stays scoped
// to the effective viewer: representatives see their own rows (matched by
// email) plus their team's hotel block; team leads additionally see their
// whole team's rows; executives see everything.
type GetItineraryUseCase struct {
	store adapter.SheetStore
}

// NewGetItineraryUseCase creates a new GetItineraryUseCase instance.
func NewGetItineraryUseCase(store adapter.SheetStore) *GetItineraryUseCase {
	return &GetItineraryUseCase{store: store}
}

// Execute fetches the itinerary view.
func (uc *GetItineraryUseCase) Execute(ctx context.Context, input GetItineraryInput) (*GetItineraryOutput, error) {
	flights, err := uc.store.Flights(ctx)
	if err != nil {
		return nil, err
	}
	cars, err := uc.store.RentalCars(ctx)
	if err != nil {
		return nil, err
	}
	hotels, err := uc.store.Hotels(ctx)
	if err != nil {
		return nil, err
	}

	out := &GetItineraryOutput{Week: input.Week}

	switch {
	case input.Actor.Tier.CanSeeAllTeams():
		out.Flights = flights
		out.RentalCars = cars
		out.Hotels = hotels
	case input.Actor.Tier.CanSeeTeamData():
		roster, err := uc.teamEmails(ctx, input.Actor.Team)
		if err != nil {
			return nil, err
		}
		for _, f := range flights {
			if _, ok := roster[strings.ToLower(f.RepEmail)]; ok {
				out.Flights = append(out.Flights, f)
			}
		}
		for _, c := range cars {
			if _, ok := roster[strings.ToLower(c.RepEmail)]; ok {
				out.RentalCars = append(out.RentalCars, c)
			}
		}
		for _, h := range hotels {
			if h.Team == input.Actor.Team {
				out.Hotels = append(out.Hotels, h)
			}
		}
	default:
		for _, f := range flights {
			if input.Actor.SameIdentity(f.RepEmail) {
				out.Flights = append(out.Flights, f)
			}
		}
		for _, c := range cars {
			if input.Actor.SameIdentity(c.RepEmail) {
				out.RentalCars = append(out.RentalCars, c)
			}
		}
		for _, h := range hotels {
			if h.Team == input.Actor.Team {
				out.Hotels = append(out.Hotels, h)
			}
		}
	}

	return out, nil
}

// teamEmails returns the lowercased emails of everyone on the given team.
func (uc *GetItineraryUseCase) teamEmails(ctx context.Context, team string) (map[string]struct{}, error) {
	employees, err := uc.store.Employees(ctx)
	if err != nil {
		return nil, err
	}
	emails := make(map[string]struct{})
	for _, emp := range employees {
		if emp.Team == team {
			emails[strings.ToLower(emp.Email)] = struct{}{}
		}
	}
	return emails, nil
}

