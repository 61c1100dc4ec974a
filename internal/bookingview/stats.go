package bookingview

import (
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"
)

const recentBookings = 5

// Stats are the dashboard counters over a normalized booking list.
type Stats struct {
	TotalBookings     int                        `json:"totalBookings"`
	ScheduledBookings int                        `json:"scheduledBookings"`
	FinishedBookings  int                        `json:"finishedBookings"`
	Revenue           float64                    `json:"revenue"`
	RevenueDisplay    string                     `json:"revenueDisplay"`
	Recent            []models.NormalizedBooking `json:"recentBookings"`
}

// Summarize counts bookings by status, sums revenue and keeps the first five
// (the most recent, since normalized lists are newest-first).
func Summarize(bookings []models.NormalizedBooking) Stats {
	st := Stats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusScheduled:
			st.ScheduledBookings++
		case domain.StatusFinished:
			st.FinishedBookings++
		}
		st.Revenue += b.Amount
	}
	st.RevenueDisplay = utils.FormatNaira(st.Revenue)
	n := min(len(bookings), recentBookings)
	st.Recent = append([]models.NormalizedBooking{}, bookings[:n]...)
	return st
}
