package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"console/internal/bookingview"
	"console/internal/domain/models"
	"console/internal/utils"
)

// SettingsService backs the settings/tools screen.
type SettingsService struct {
	Trips     TripSource
	Bookings  BookingService
	RequestID string
}

// Backup exports every trip and normalized booking. Unlike the dashboard a
// backup is all or nothing.
func (s SettingsService) Backup(ctx context.Context, adminToken string) (bookingview.BackupExport, string, error) {
	var (
		trips    []models.Trip
		bookings []models.NormalizedBooking
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		trips, err = s.Trips.FetchAllTrips(gctx, adminToken)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.Bookings.Load(gctx, adminToken)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.LogEvent(s.RequestID, "settings", "backup", "error="+err.Error())
		return bookingview.BackupExport{}, "", err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	if bookings == nil {
		bookings = []models.NormalizedBooking{}
	}
	utils.LogEvent(s.RequestID, "settings", "backup", utils.LogFields("trips", len(trips), "bookings", len(bookings)))
	name := bookingview.ExportFilename(bookingview.PrefixBackup, s.Bookings.now())
	return bookingview.BackupExport{Trips: trips, Bookings: bookings}, name, nil
}
