package backend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"console/internal/domain/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// flexInt accepts 3 as well as "3"; seat positions arrive in both shapes.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		var fl float64
		if ferr := json.Unmarshal([]byte(s), &fl); ferr != nil {
			return fmt.Errorf("not an integer: %s", s)
		}
		n = int(fl)
	}
	*f = flexInt(n)
	return nil
}

type wirePlace struct {
	City     string `json:"city"`
	Location string `json:"location"`
}

type wireTripDetails struct {
	TripName      string          `json:"tripName"`
	TripID        string          `json:"tripId"`
	Bus           string          `json:"bus"`
	Pickup        *wirePlace      `json:"pickup" validate:"required"`
	Dropoff       *wirePlace      `json:"dropoff" validate:"required"`
	Takeoff       *models.Takeoff `json:"takeoff"`
	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
	Price         float64         `json:"price"`
}

type wireBooking struct {
	BookingCode    string           `json:"bookingCode" validate:"required"`
	PassengerEmail string           `json:"passengerEmail"`
	Route          string           `json:"route"`
	SeatID         string           `json:"seatId"`
	SeatPosition   flexInt          `json:"seatPosition"`
	Amount         float64          `json:"amount"`
	Date           string           `json:"date"`
	TripDetails    *wireTripDetails `json:"tripDetails" validate:"required"`
}

func (w wireBooking) record() models.RawBookingRecord {
	td := w.TripDetails
	rec := models.RawBookingRecord{
		BookingCode:    w.BookingCode,
		PassengerEmail: w.PassengerEmail,
		Route:          w.Route,
		SeatID:         w.SeatID,
		SeatPosition:   int(w.SeatPosition),
		Amount:         w.Amount,
		Date:           w.Date,
		TripDetails: models.TripDetails{
			TripName:      td.TripName,
			TripID:        td.TripID,
			Bus:           td.Bus,
			Pickup:        models.Place(*td.Pickup),
			Dropoff:       models.Place(*td.Dropoff),
			DepartureTime: td.DepartureTime,
			ArrivalTime:   td.ArrivalTime,
			Price:         td.Price,
		},
	}
	if td.Takeoff != nil {
		rec.TripDetails.Takeoff = *td.Takeoff
	}
	return rec
}

// RecordIssue describes a booking row that failed the schema check.
type RecordIssue struct {
	Index       int    `json:"index"`
	BookingCode string `json:"bookingCode,omitempty"`
	Reason      string `json:"reason"`
}

// BookingBatch is the validated content of /trips/bookings: the rows that
// passed plus a note for each row that did not.
type BookingBatch struct {
	Records  []models.RawBookingRecord
	Rejected []RecordIssue
}

// decodeBookings validates each row on its own so one bad row does not sink
// the whole listing.
func decodeBookings(rows []json.RawMessage) BookingBatch {
	batch := BookingBatch{Records: make([]models.RawBookingRecord, 0, len(rows))}
	for i, row := range rows {
		var w wireBooking
		if err := json.Unmarshal(row, &w); err != nil {
			batch.Rejected = append(batch.Rejected, RecordIssue{Index: i, Reason: err.Error()})
			continue
		}
		if err := validate.Struct(w); err != nil {
			batch.Rejected = append(batch.Rejected, RecordIssue{
				Index:       i,
				BookingCode: w.BookingCode,
				Reason:      describeValidation(err),
			})
			continue
		}
		batch.Records = append(batch.Records, w.record())
	}
	return batch
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+" "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
