package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"console/internal/backend"
	"console/internal/bookingview"
	"console/internal/domain"
	"console/internal/domain/models"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newBookingService(f *fakeBackend) BookingService {
	return BookingService{
		Source:     f,
		Normalizer: bookingview.Normalizer{Loc: time.UTC},
		Now:        func() time.Time { return fixedNow },
	}
}

func TestBookingServiceLoadNormalizes(t *testing.T) {
	f := &fakeBackend{batch: backend.BookingBatch{
		Records: []models.RawBookingRecord{
			rawBooking("A1", "a@x.com", 1, "2025-07-01"),
			rawBooking("A1", "a@x.com", 2, "2025-07-01"),
			rawBooking("B2", "b@x.com", 5, "2025-01-01"),
		},
		Rejected: []backend.RecordIssue{{Index: 3, Reason: "tripDetails is required"}},
	}}

	got, err := newBookingService(f).Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	if got[0].BookingCode != "B2" || got[1].BookingCode != "A1" {
		t.Fatalf("expected newest-first order, got %s,%s", got[0].BookingCode, got[1].BookingCode)
	}
	if got[1].SeatPosition != 1 || got[1].Status != domain.StatusScheduled {
		t.Fatalf("unexpected A1 %+v", got[1])
	}
	if got[0].Status != domain.StatusFinished {
		t.Fatalf("expected B2 finished, got %s", got[0].Status)
	}
}

func TestBookingServiceLoadPropagatesUpstream(t *testing.T) {
	f := &fakeBackend{bookingsErr: domain.UpstreamError{Status: 500, Msg: "boom"}}
	if _, err := newBookingService(f).Load(context.Background(), "tok"); !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestBookingServiceLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeBackend{}
	if _, err := newBookingService(f).Load(ctx, "tok"); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestBookingServiceListPagesAndSearches(t *testing.T) {
	var recs []models.RawBookingRecord
	for i := 0; i < 45; i++ {
		recs = append(recs, rawBooking(fmt.Sprintf("C%02d", i), "x@y.com", i, "2025-07-01"))
	}
	recs[10].PassengerEmail = "needle@y.com"
	f := &fakeBackend{batch: backend.BookingBatch{Records: recs}}
	svc := newBookingService(f)

	page, err := svc.List(context.Background(), "tok", "", 3)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Page != 3 || page.TotalPages != 3 || page.Total != 45 || len(page.Records) != 5 {
		t.Fatalf("unexpected page %+v", page.Pagination)
	}

	page, err = svc.List(context.Background(), "tok", "NEEDLE", 3)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Page != 1 || page.Total != 1 || page.Records[0].BookingCode != "C10" {
		t.Fatalf("unexpected search page %+v", page)
	}

	page, err = svc.List(context.Background(), "tok", "nothing-matches", 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 0 || page.Records == nil || len(page.Records) != 0 {
		t.Fatalf("unexpected empty page %+v", page)
	}
}

func TestBookingServiceExport(t *testing.T) {
	f := &fakeBackend{batch: backend.BookingBatch{Records: []models.RawBookingRecord{
		rawBooking("A1", "a@x.com", 1, "2025-07-01"),
		rawBooking("B2", "b@x.com", 1, "2025-07-01"),
	}}}
	payload, name, err := newBookingService(f).Export(context.Background(), "tok", "b@x")
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if name != "bookings-export-2025-06-01.json" {
		t.Fatalf("unexpected filename %q", name)
	}
	if len(payload.Bookings) != 1 || payload.Bookings[0].BookingCode != "B2" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestBookingServiceDetail(t *testing.T) {
	rec := rawBooking("A1", "a@x.com", 1, "2025-07-01")
	bad := rawBooking("Z9", "z@x.com", 1, "2025-07-01")
	bad.Date = "garbage"
	f := &fakeBackend{batch: backend.BookingBatch{Records: []models.RawBookingRecord{rec, bad}}}
	svc := newBookingService(f)

	d, err := svc.Detail(context.Background(), "tok", "a1")
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if d.DateDisplay != "Mar 1, 2025, 9:30 AM" {
		t.Fatalf("unexpected display date %q", d.DateDisplay)
	}

	d, err = svc.Detail(context.Background(), "tok", "Z9")
	if err != nil || d.DateDisplay != "N/A" {
		t.Fatalf("expected N/A for malformed date, got %q (%v)", d.DateDisplay, err)
	}

	if _, err := svc.Detail(context.Background(), "tok", "missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Detail(context.Background(), "tok", " "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
