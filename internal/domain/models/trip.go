package models

// Seat is one physical seat of a trip's vehicle.
type Seat struct {
	ID        string `json:"_id"`
	Position  int    `json:"position"`
	IsBooked  bool   `json:"isBooked"`
	IsPaid    bool   `json:"isPaid"`
	IsBooking bool   `json:"isBooking"`
}

// TripAdmin names the admin who created the trip.
type TripAdmin struct {
	Name string `json:"name"`
}

// Trip mirrors the backend trip document.
type Trip struct {
	ID            string     `json:"_id"`
	TripName      string     `json:"tripName"`
	TripID        string     `json:"tripId,omitempty"`
	Bus           string     `json:"bus,omitempty"`
	VehicleType   string     `json:"vehicleType,omitempty"`
	Pickup        Place      `json:"pickup"`
	Dropoff       Place      `json:"dropoff"`
	Takeoff       Takeoff    `json:"takeoff"`
	DepartureTime string     `json:"departureTime"`
	ArrivalTime   string     `json:"arrivalTime"`
	Price         float64    `json:"price"`
	SeatCount     int        `json:"seatCount"`
	Status        string     `json:"status,omitempty"`
	Seats         []Seat     `json:"seats,omitempty"`
	Admin         *TripAdmin `json:"admin,omitempty"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`
}
