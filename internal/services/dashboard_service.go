package services

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"console/internal/bookingview"
	"console/internal/domain/models"
	"console/internal/utils"
)

// DashboardService feeds the admin dashboard.
type DashboardService struct {
	Trips     TripSource
	Bookings  BookingService
	RequestID string
}

type Dashboard struct {
	Stats    bookingview.Stats          `json:"stats"`
	Trips    []models.Trip              `json:"trips"`
	Bookings []models.NormalizedBooking `json:"bookings"`
}

// Load fetches trips and bookings side by side. Failing to list trips only
// empties the trips panel; failing to list bookings fails the dashboard.
func (s DashboardService) Load(ctx context.Context, adminToken string) (Dashboard, error) {
	var (
		trips    []models.Trip
		bookings []models.NormalizedBooking
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.Trips.FetchAllTrips(gctx, adminToken)
		if err != nil {
			utils.LogEvent(s.RequestID, "dashboard", "fetch_trips", "error="+err.Error())
			return nil
		}
		trips = t
		return nil
	})
	g.Go(func() error {
		b, err := s.Bookings.Load(gctx, adminToken)
		if err != nil {
			return err
		}
		bookings = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	trips = newestFirst(trips)
	return Dashboard{
		Stats:    bookingview.Summarize(bookings),
		Trips:    trips,
		Bookings: bookings,
	}, nil
}

// Report is the dashboard download.
func (s DashboardService) Report(ctx context.Context, adminToken string) (bookingview.ReportExport, string, error) {
	d, err := s.Load(ctx, adminToken)
	if err != nil {
		return bookingview.ReportExport{}, "", err
	}
	name := bookingview.ExportFilename(bookingview.PrefixReport, s.Bookings.now())
	return bookingview.ReportExport{Bookings: d.Bookings, Trips: d.Trips}, name, nil
}

// newestFirst copies trips in reverse backend order.
func newestFirst(trips []models.Trip) []models.Trip {
	out := make([]models.Trip, len(trips))
	copy(out, trips)
	slices.Reverse(out)
	return out
}
