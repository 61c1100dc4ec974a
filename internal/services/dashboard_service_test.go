package services

import (
	"context"
	"errors"
	"testing"

	"console/internal/backend"
	"console/internal/domain"
	"console/internal/domain/models"
)

func TestDashboardLoad(t *testing.T) {
	f := &fakeBackend{
		trips: []models.Trip{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		batch: backend.BookingBatch{Records: []models.RawBookingRecord{
			rawBooking("A1", "a@x.com", 1, "2025-07-01"),
			rawBooking("B2", "b@x.com", 1, "2025-01-01"),
		}},
	}
	svc := DashboardService{Trips: f, Bookings: newBookingService(f)}

	d, err := svc.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Trips[0].ID != "t3" || d.Trips[2].ID != "t1" {
		t.Fatalf("expected trips newest first, got %+v", d.Trips)
	}
	if f.trips[0].ID != "t1" {
		t.Fatalf("backend slice must not be reordered")
	}
	st := d.Stats
	if st.TotalBookings != 2 || st.ScheduledBookings != 1 || st.FinishedBookings != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.Revenue != 30000 || st.RevenueDisplay != "₦30,000" {
		t.Fatalf("unexpected revenue %v %q", st.Revenue, st.RevenueDisplay)
	}
}

func TestDashboardTripsFailureIsSoft(t *testing.T) {
	f := &fakeBackend{
		tripsErr: errors.New("trips down"),
		batch:    backend.BookingBatch{Records: []models.RawBookingRecord{rawBooking("A1", "a@x.com", 1, "2025-07-01")}},
	}
	d, err := DashboardService{Trips: f, Bookings: newBookingService(f)}.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("trips failure should not fail the dashboard: %v", err)
	}
	if d.Trips == nil || len(d.Trips) != 0 || d.Stats.TotalBookings != 1 {
		t.Fatalf("unexpected dashboard %+v", d)
	}
}

func TestDashboardBookingsFailureFails(t *testing.T) {
	f := &fakeBackend{bookingsErr: domain.UpstreamError{Msg: "Failed to fetch bookings"}}
	if _, err := (DashboardService{Trips: f, Bookings: newBookingService(f)}).Load(context.Background(), "tok"); !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestDashboardReport(t *testing.T) {
	f := &fakeBackend{
		trips: []models.Trip{{ID: "t1"}},
		batch: backend.BookingBatch{Records: []models.RawBookingRecord{rawBooking("A1", "a@x.com", 1, "2025-07-01")}},
	}
	rep, name, err := DashboardService{Trips: f, Bookings: newBookingService(f)}.Report(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if name != "admin-report-2025-06-01.json" || len(rep.Trips) != 1 || len(rep.Bookings) != 1 {
		t.Fatalf("unexpected report %q %+v", name, rep)
	}
}

func TestSettingsBackup(t *testing.T) {
	f := &fakeBackend{
		batch: backend.BookingBatch{Records: []models.RawBookingRecord{rawBooking("A1", "a@x.com", 1, "2025-07-01")}},
	}
	out, name, err := SettingsService{Trips: f, Bookings: newBookingService(f)}.Backup(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Backup error: %v", err)
	}
	if name != "orro-motors-backup-2025-06-01.json" {
		t.Fatalf("unexpected filename %q", name)
	}
	if out.Trips == nil || len(out.Bookings) != 1 || out.Bookings[0].TripDetails.Pickup.City != "Lagos" {
		t.Fatalf("unexpected backup %+v", out)
	}

	f.tripsErr = errors.New("down")
	if _, _, err := (SettingsService{Trips: f, Bookings: newBookingService(f)}).Backup(context.Background(), "tok"); err == nil {
		t.Fatalf("backup must fail when trips fail")
	}
}
