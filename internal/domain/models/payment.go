package models

// PaymentRequest is the body of /pay/create-paystack-payment.
type PaymentRequest struct {
	Email       string   `json:"email"`
	Amount      float64  `json:"amount"`
	CallbackURL string   `json:"callback_url"`
	SeatIDs     []string `json:"seatIds"`
	UserID      string   `json:"userId"`
	TripID      string   `json:"tripId"`
}

// PaymentInit is what the gateway hands back to start a checkout.
type PaymentInit struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
}

// PaymentVerifyRequest is the body of /pay/verify-payment.
type PaymentVerifyRequest struct {
	Email     string   `json:"email"`
	SeatIDs   []string `json:"seatIds"`
	Reference string   `json:"reference"`
}

// PaidSeat is one seat confirmed by a verified payment.
type PaidSeat struct {
	BookingCode  string  `json:"bookingCode"`
	SeatID       string  `json:"seatId"`
	Amount       float64 `json:"amount"`
	TripID       string  `json:"tripId"`
	SeatPosition int     `json:"seatPosition"`
}

// PaymentConfirmation is the outcome of a verified payment.
type PaymentConfirmation struct {
	Bookings  []PaidSeat `json:"bookings"`
	Trip      *Trip      `json:"trip"`
	TotalPaid float64    `json:"totalPaid"`
}
