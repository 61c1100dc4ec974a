package models

import "console/internal/domain"

// Place is a city plus the terminal/location within it.
type Place struct {
	City     string `json:"city"`
	Location string `json:"location"`
}

// Takeoff holds the scheduled departure as sent by the backend: an ISO date
// and a 12-hour clock string such as "8:00 AM".
type Takeoff struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// TripDetails is the trip snapshot embedded in every seat-level booking row.
type TripDetails struct {
	TripName      string  `json:"tripName"`
	TripID        string  `json:"tripId"`
	Bus           string  `json:"bus"`
	Pickup        Place   `json:"pickup"`
	Dropoff       Place   `json:"dropoff"`
	Takeoff       Takeoff `json:"takeoff"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
}

// RawBookingRecord is one seat of a checkout. Seats bought together share
// BookingCode.
type RawBookingRecord struct {
	BookingCode    string      `json:"bookingCode"`
	PassengerEmail string      `json:"passengerEmail"`
	Route          string      `json:"route"`
	SeatID         string      `json:"seatId"`
	SeatPosition   int         `json:"seatPosition"`
	Amount         float64     `json:"amount"`
	Date           string      `json:"date"`
	TripDetails    TripDetails `json:"tripDetails"`
}

// NormalizedBooking is the logical booking for one booking code.
type NormalizedBooking struct {
	BookingCode    string        `json:"bookingCode"`
	PassengerEmail string        `json:"passengerEmail"`
	Route          string        `json:"route"`
	SeatID         string        `json:"seatId"`
	SeatPosition   int           `json:"seatPosition"`
	Amount         float64       `json:"amount"`
	Status         domain.Status `json:"status"`
	Date           string        `json:"date"`
	TripDetails    TripDetails   `json:"tripDetails"`
}

// BookedSeat is the seat reference on a customer booking.
type BookedSeat struct {
	ID       string `json:"_id"`
	Position int    `json:"position"`
}

// BookedTrip is the trip summary on a customer booking.
type BookedTrip struct {
	ID          string  `json:"_id"`
	TripName    string  `json:"tripName"`
	Pickup      Place   `json:"pickup"`
	Dropoff     Place   `json:"dropoff"`
	Takeoff     Takeoff `json:"takeoff"`
	ArrivalTime string  `json:"arrivalTime,omitempty"`
}

// UserBooking is a booking as listed for the signed-in customer.
type UserBooking struct {
	BookingCode      string     `json:"bookingCode"`
	Amount           float64    `json:"amount"`
	PaymentReference string     `json:"paymentReference"`
	Position         int        `json:"position"`
	Seat             BookedSeat `json:"seat"`
	Trip             BookedTrip `json:"trip"`
	CreatedAt        string     `json:"createdAt"`
}
