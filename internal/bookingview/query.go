package bookingview

import (
	"console/internal/domain/models"
	"console/internal/utils"
)

const (
	// BookingsPageSize is the page size of the bookings management list.
	BookingsPageSize = 20
	// TripsPageSize is the page size of the trip lists.
	TripsPageSize = 5
)

// Search keeps bookings whose code, passenger email, route, trip name or bus
// contains term, ignoring case. An empty term returns records as-is.
func Search(records []models.NormalizedBooking, term string) []models.NormalizedBooking {
	if term == "" {
		return records
	}
	return Filter(records, term, func(b models.NormalizedBooking) []string {
		return []string{
			b.BookingCode,
			b.PassengerEmail,
			b.Route,
			b.TripDetails.TripName,
			b.TripDetails.Bus,
		}
	})
}

// SearchTrips keeps trips whose name, pickup city or dropoff city contains term.
func SearchTrips(trips []models.Trip, term string) []models.Trip {
	if term == "" {
		return trips
	}
	return Filter(trips, term, func(t models.Trip) []string {
		return []string{t.TripName, t.Pickup.City, t.Dropoff.City}
	})
}

// Filter is the generic case-insensitive substring match over the fields
// returned by fields.
func Filter[T any](records []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields(r) {
			if utils.ContainsFold(f, term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// TotalPages is ceil(n / pageSize).
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage pins page into [1, totalPages]. With no pages at all it is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns records[(page-1)*pageSize : page*pageSize]. Callers clamp
// page first; a page past the end yields an empty slice and a page below 1
// yields nil.
func Paginate[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return records[:0:0]
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
