// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/phoenix-field/backend/internal/application/usecase/itinerary"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// ItineraryResponse represents the response for the itinerary endpoint.
// When a specific week is requested, each record carries only that week's
// block; otherwise all weeks are included.
type ItineraryResponse struct {
	Week       int                 `json:"week,omitempty"`
	Flights    []FlightResponse    `json:"flights"`
	RentalCars []RentalCarResponse `json:"rental_cars"`
	Hotels     []HotelStayResponse `json:"hotels"`
}

// FlightLegResponse represents one week's flight block.
type FlightLegResponse struct {
	Week             int    `json:"week"`
	FlyDate          string `json:"fly_date"`
	Confirmation     string `json:"confirmation"`
	ArrivalDeparture string `json:"arrival_departure"`
	Cost             string `json:"cost"`
}

// FlightResponse represents one representative's flight row.
type FlightResponse struct {
	RepName     string              `json:"rep_name"`
	AirportCode string              `json:"airport_code"`
	Weeks       []FlightLegResponse `json:"weeks"`
}

// RentalCarLegResponse represents one week's rental block.
type RentalCarLegResponse struct {
	Week         int    `json:"week"`
	Date         string `json:"date"`
	Info         string `json:"info"`
	Vendor       string `json:"vendor"`
	Confirmation string `json:"confirmation"`
	PickupReturn string `json:"pickup_return"`
}

// RentalCarResponse represents one representative's rental car row.
type RentalCarResponse struct {
	RepName string                 `json:"rep_name"`
	Weeks   []RentalCarLegResponse `json:"weeks"`
}

// HotelWeekResponse represents one week's lodging block.
type HotelWeekResponse struct {
	Week                   int    `json:"week"`
	Date                   string `json:"date"`
	Reservation            string `json:"reservation"`
	HotelName              string `json:"hotel_name"`
	Address                string `json:"address"`
	Food                   string `json:"food"`
	ConferenceConfirmation string `json:"conference_confirmation"`
	ConferenceAddress      string `json:"conference_address"`
}

// HotelStayResponse represents one team's hotel row.
type HotelStayResponse struct {
	Team  string              `json:"team"`
	Weeks []HotelWeekResponse `json:"weeks"`
}

// ToItineraryResponse converts a GetItineraryOutput to an ItineraryResponse
// DTO, projecting down to the requested week when one was selected.
func ToItineraryResponse(output *itinerary.GetItineraryOutput) ItineraryResponse {
	resp := ItineraryResponse{
		Week:       output.Week,
		Flights:    make([]FlightResponse, len(output.Flights)),
		RentalCars: make([]RentalCarResponse, len(output.RentalCars)),
		Hotels:     make([]HotelStayResponse, len(output.Hotels)),
	}

	for i, f := range output.Flights {
		fr := FlightResponse{RepName: f.RepName, AirportCode: f.AirportCode}
		for w := 0; w < entity.TripWeeks; w++ {
			if !weekSelected(output.Week, w) {
				continue
			}
			leg := f.Weeks[w]
			fr.Weeks = append(fr.Weeks, FlightLegResponse{
				Week:             w + 1,
				FlyDate:          leg.FlyDate,
				Confirmation:     leg.Confirmation,
				ArrivalDeparture: leg.ArrivalDeparture,
				Cost:             leg.Cost,
			})
		}
		resp.Flights[i] = fr
	}

	for i, c := range output.RentalCars {
		cr := RentalCarResponse{RepName: c.RepName}
		for w := 0; w < entity.TripWeeks; w++ {
			if !weekSelected(output.Week, w) {
				continue
			}
			leg := c.Weeks[w]
			cr.Weeks = append(cr.Weeks, RentalCarLegResponse{
				Week:         w + 1,
				Date:         leg.Date,
				Info:         leg.Info,
				Vendor:       leg.Vendor,
				Confirmation: leg.Confirmation,
				PickupReturn: leg.PickupReturn,
			})
		}
		resp.RentalCars[i] = cr
	}

	for i, h := range output.Hotels {
		hr := HotelStayResponse{Team: h.Team}
		for w := 0; w < entity.TripWeeks; w++ {
			if !weekSelected(output.Week, w) {
				continue
			}
			week := h.Weeks[w]
			hr.Weeks = append(hr.Weeks, HotelWeekResponse{
				Week:                   w + 1,
				Date:                   week.Date,
				Reservation:            week.Reservation,
				HotelName:              week.HotelName,
				Address:                week.Address,
				Food:                   week.Food,
				ConferenceConfirmation: week.ConferenceConfirmation,
				ConferenceAddress:      week.ConferenceAddress,
			})
		}
		resp.Hotels[i] = hr
	}

	return resp
}

// weekSelected reports whether the zero-based week index matches the
// 1-based selection; zero selects every week.
func weekSelected(selected, index int) bool {
	return selected == 0 || selected == index+1
}
