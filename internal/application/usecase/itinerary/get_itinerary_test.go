package itinerary

import (
	"context"
	"testing"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

type fakeStore struct {
	employees []entity.Employee
	flights   []entity.Flight
	cars      []entity.RentalCar
	hotels    []entity.HotelStay
}

func (f *fakeStore) Employees(ctx context.Context) ([]entity.Employee, error) {
	return f.employees, nil
}
func (f *fakeStore) Sales(ctx context.Context) ([]entity.SaleTransaction, error) { return nil, nil }
func (f *fakeStore) Flights(ctx context.Context) ([]entity.Flight, error)        { return f.flights, nil }
func (f *fakeStore) RentalCars(ctx context.Context) ([]entity.RentalCar, error)  { return f.cars, nil }
func (f *fakeStore) Hotels(ctx context.Context) ([]entity.HotelStay, error)      { return f.hotels, nil }
func (f *fakeStore) Updates(ctx context.Context) ([]entity.Update, error)        { return nil, nil }
func (f *fakeStore) Refresh(ctx context.Context) error                           { return nil }

func fixtureStore() *fakeStore {
	return &fakeStore{
		employees: []entity.Employee{
			{Name: "Casey Lin", Email: "casey@phoenix.test", Team: "KYT1"},
			{Name: "Riley Poe", Email: "riley@phoenix.test", Team: "KYT1"},
			{Name: "Drew Ash", Email: "drew@phoenix.test", Team: "KYT2"},
		},
		flights: []entity.Flight{
			{RepName: "Casey Lin", RepEmail: "casey@phoenix.test"},
			{RepName: "Riley Poe", RepEmail: "riley@phoenix.test"},
			{RepName: "Drew Ash", RepEmail: "drew@phoenix.test"},
		},
		cars: []entity.RentalCar{
			{RepName: "Casey Lin", RepEmail: "CASEY@phoenix.test"},
			{RepName: "Drew Ash", RepEmail: "drew@phoenix.test"},
		},
		hotels: []entity.HotelStay{
			{Team: "KYT1"},
			{Team: "KYT2"},
		},
	}
}

func TestGetItinerary(t *testing.T) {
	uc := NewGetItineraryUseCase(fixtureStore())

	t.Run("representative sees own rows and team hotel", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetItineraryInput{
			Actor: entity.ActorProfile{Email: "casey@phoenix.test", Team: "KYT1", Tier: entity.TierRepresentative},
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(out.Flights) != 1 || out.Flights[0].RepEmail != "casey@phoenix.test" {
			t.Errorf("flights = %+v", out.Flights)
		}
		// Email matching is case-insensitive across sheets.
		if len(out.RentalCars) != 1 {
			t.Errorf("rental cars = %+v", out.RentalCars)
		}
		if len(out.Hotels) != 1 || out.Hotels[0].Team != "KYT1" {
			t.Errorf("hotels = %+v", out.Hotels)
		}
	})

	t.Run("team lead sees whole team", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetItineraryInput{
			Actor: entity.ActorProfile{Email: "casey@phoenix.test", Team: "KYT1", Tier: entity.TierTeamLead},
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(out.Flights) != 2 {
			t.Errorf("flights = %d, want both KYT1 reps", len(out.Flights))
		}
		if len(out.Hotels) != 1 || out.Hotels[0].Team != "KYT1" {
			t.Errorf("hotels = %+v", out.Hotels)
		}
	})

	t.Run("executive sees everything", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetItineraryInput{
			Actor: entity.ActorProfile{Email: "sam@phoenix.test", Tier: entity.TierExecutive},
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(out.Flights) != 3 || len(out.RentalCars) != 2 || len(out.Hotels) != 2 {
			t.Errorf("executive view truncated: %d/%d/%d", len(out.Flights), len(out.RentalCars), len(out.Hotels))
		}
	})
}
