// Package bookingview turns seat-level booking rows from the backend into the
// de-duplicated, searchable and pageable booking lists the console renders.
package bookingview

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"
)

const (
	unknownTrip = "Unknown Trip"
)

var clockPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s?(AM|PM)`)

// Normalizer collapses raw seat rows into one booking per booking code.
// Loc is the zone takeoff dates are read in; nil means time.Local.
type Normalizer struct {
	Loc *time.Location
}

// Normalize is Normalizer{}.Normalize.
func Normalize(raw []models.RawBookingRecord, now time.Time) []models.NormalizedBooking {
	return Normalizer{}.Normalize(raw, now)
}

// Normalize keeps the first record seen for every booking code, derives its
// status against now, and returns the bookings newest-first (the reverse of
// first-seen order). Later seats of a code are dropped, so only the first
// seat's id and position survive.
func (n Normalizer) Normalize(raw []models.RawBookingRecord, now time.Time) []models.NormalizedBooking {
	index := make(map[string]struct{}, len(raw))
	ordered := make([]models.NormalizedBooking, 0, len(raw))

	for _, rec := range raw {
		if _, seen := index[rec.BookingCode]; seen {
			continue
		}
		index[rec.BookingCode] = struct{}{}
		ordered = append(ordered, n.normalizeOne(rec, now))
	}

	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}

func (n Normalizer) normalizeOne(rec models.RawBookingRecord, now time.Time) models.NormalizedBooking {
	td := rec.TripDetails
	td.TripName = fallback(td.TripName, unknownTrip)
	td.TripID = fallback(td.TripID, utils.Placeholder)
	td.Bus = fallback(td.Bus, utils.Placeholder)

	return models.NormalizedBooking{
		BookingCode:    rec.BookingCode,
		PassengerEmail: rec.PassengerEmail,
		Route:          rec.Route,
		SeatID:         rec.SeatID,
		SeatPosition:   rec.SeatPosition,
		Amount:         rec.Amount,
		Status:         n.Status(rec.TripDetails.Takeoff, now),
		Date:           rec.Date,
		TripDetails:    td,
	}
}

// Status is scheduled when the takeoff instant is strictly after now.
// A takeoff without a usable date is finished.
func (n Normalizer) Status(t models.Takeoff, now time.Time) domain.Status {
	at, ok := n.TakeoffInstant(t)
	if ok && at.After(now) {
		return domain.StatusScheduled
	}
	return domain.StatusFinished
}

// TakeoffInstant combines the takeoff date with its 12-hour clock. The second
// result is false when the date is absent or unparsable. A clock that does not
// look like "h:mm AM" leaves the instant at midnight.
func (n Normalizer) TakeoffInstant(t models.Takeoff) (time.Time, bool) {
	if strings.TrimSpace(t.Date) == "" {
		return time.Time{}, false
	}
	day, err := utils.ParseDate(t.Date, n.Loc)
	if err != nil {
		return time.Time{}, false
	}
	hour, minute, ok := ParseClock(t.Time)
	if !ok {
		return day, true
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

// ParseClock reads "8:00 AM" / "12:30pm" style strings into 24-hour parts.
// 12 AM is hour 0 and 12 PM stays 12. Out-of-range values are returned as-is
// and roll over when applied to a date.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
