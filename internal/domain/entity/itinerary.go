// Package entity defines the core business entities for the domain layer.
package entity

// The itinerary sheets lay three trip weeks side by side in fixed column
// blocks. Each record carries its weeks as a 3-element array indexed by
// week-1; blank blocks simply decode to zero values.

// TripWeeks is the number of week blocks each itinerary sheet carries.
const TripWeeks = 3

// FlightLeg is one week's flight block from the Flights sheet.
type FlightLeg struct {
	FlyDate          string
	Confirmation     string
	ArrivalDeparture string
	Cost             string
}

// Flight is one representative's row of the Flights sheet.
type Flight struct {
	RepName     string
	RepEmail    string
	AirportCode string
	Weeks       [TripWeeks]FlightLeg
}

// RentalCarLeg is one week's rental block from the Rental Cars sheet.
type RentalCarLeg struct {
	Date         string
	Info         string
	Vendor       string
	Confirmation string
	PickupReturn string
}

// RentalCar is one representative's row of the Rental Cars sheet.
type RentalCar struct {
	RepName  string
	RepEmail string
	Weeks    [TripWeeks]RentalCarLeg
}

// HotelWeek is one week's lodging block from the Hotel Info sheet.
type HotelWeek struct {
	Date                   string
	Reservation            string
	HotelName              string
	Address                string
	Food                   string
	ConferenceConfirmation string
	ConferenceAddress      string
}

// HotelStay is one team's row of the Hotel Info sheet. Hotels are booked
// per team, not per representative.
type HotelStay struct {
	Team  string
	Weeks [TripWeeks]HotelWeek
}
