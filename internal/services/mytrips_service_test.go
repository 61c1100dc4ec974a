package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"console/internal/bookingview"
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/session"
)

func userBooking(code, date, created string) models.UserBooking {
	return models.UserBooking{
		BookingCode: code,
		Amount:      9000,
		Seat:        models.BookedSeat{ID: code + "-s", Position: 4},
		Trip: models.BookedTrip{
			TripName: "Lagos Express",
			Pickup:   models.Place{City: "Lagos", Location: "Jibowu"},
			Dropoff:  models.Place{City: "Abuja"},
			Takeoff:  models.Takeoff{Date: date, Time: "7:30 PM"},
		},
		CreatedAt: created,
	}
}

func newMyTrips(f *fakeBackend) MyTripsService {
	return MyTripsService{
		Source:     f,
		Normalizer: bookingview.Normalizer{Loc: time.UTC},
		Now:        func() time.Time { return fixedNow },
	}
}

func TestMyTripsTabs(t *testing.T) {
	f := &fakeBackend{userBooking: []models.UserBooking{
		userBooking("OLD", "2025-01-10", "2025-01-01T10:00:00Z"),
		userBooking("NEW", "2025-08-10", "2025-05-01T10:00:00Z"),
		userBooking("BAD", "not-a-date", "2025-04-01T10:00:00Z"),
		userBooking("NOCREATED", "2025-09-01", ""),
	}}
	svc := newMyTrips(f)
	sess := signedIn()

	all, err := svc.List(context.Background(), sess, "", 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	codes := []string{}
	for _, b := range all.Records {
		codes = append(codes, b.BookingCode)
	}
	want := []string{"NEW", "OLD", "NOCREATED"}
	if all.Total != len(want) || len(codes) != len(want) {
		t.Fatalf("undated booking must be dropped, got %v", codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("unexpected order %v", codes)
		}
	}

	up, err := svc.List(context.Background(), sess, "upcoming", 1)
	if err != nil || up.Total != 2 || up.Records[0].BookingCode != "NEW" {
		t.Fatalf("unexpected upcoming %+v (%v)", up, err)
	}
	past, err := svc.List(context.Background(), sess, "PAST", 1)
	if err != nil || past.Total != 1 || past.Records[0].BookingCode != "OLD" {
		t.Fatalf("unexpected past %+v (%v)", past, err)
	}

	if _, err := svc.List(context.Background(), sess, "later", 1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.List(context.Background(), session.New(), "all", 1); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestMyTripsPagesByFive(t *testing.T) {
	f := &fakeBackend{}
	for i := 0; i < 7; i++ {
		f.userBooking = append(f.userBooking, userBooking("B", "2025-08-10", ""))
	}
	page, err := newMyTrips(f).List(context.Background(), signedIn(), "all", 2)
	if err != nil || page.TotalPages != 2 || len(page.Records) != 2 {
		t.Fatalf("unexpected page %+v (%v)", page.Pagination, err)
	}
}

func TestMyTripsTicket(t *testing.T) {
	f := &fakeBackend{userBooking: []models.UserBooking{userBooking("K7", "2025-08-10", "")}}
	svc := newMyTrips(f)

	pdf, name, err := svc.Ticket(context.Background(), signedIn(), "k7")
	if err != nil {
		t.Fatalf("Ticket error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) || name != "ETICKET_K7_4.pdf" {
		t.Fatalf("unexpected ticket %q (%d bytes)", name, len(pdf))
	}
	if _, _, err := svc.Ticket(context.Background(), signedIn(), "nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
