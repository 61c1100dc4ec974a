package services

import (
	"context"
	"fmt"
	"testing"

	"console/internal/domain"
	"console/internal/domain/models"
)

func TestTripGetSortsSeats(t *testing.T) {
	f := &fakeBackend{byID: map[string]models.Trip{
		"t1": {ID: "t1", Pickup: models.Place{City: "lagos", Location: "jibowu_park"}, Dropoff: models.Place{City: "PORT-HARCOURT"}, Seats: []models.Seat{{ID: "s3", Position: 3}, {ID: "s1", Position: 1}, {ID: "s2", Position: 2}}},
	}}
	svc := TripService{Finder: f, All: f}

	trip, err := svc.Get(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	for i, s := range trip.Seats {
		if s.Position != i+1 {
			t.Fatalf("seats not ordered: %+v", trip.Seats)
		}
	}
	if f.byID["t1"].Seats[0].ID != "s3" {
		t.Fatalf("backend seats must not be reordered")
	}
	if trip.Pickup.City != "Lagos" || trip.Pickup.Location != "Jibowu Park" || trip.Dropoff.City != "Port Harcourt" {
		t.Fatalf("places not title cased: %+v %+v", trip.Pickup, trip.Dropoff)
	}
	if f.byID["t1"].Pickup.City != "lagos" {
		t.Fatalf("backend trip must not be modified")
	}
	if _, err := svc.Get(context.Background(), "missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTripResultsFilter(t *testing.T) {
	f := &fakeBackend{byID: map[string]models.Trip{
		"t1": {ID: "t1", TripName: "Morning", Pickup: models.Place{City: "Lagos"}, Dropoff: models.Place{City: "Abuja"}},
		"t2": {ID: "t2", TripName: "Evening", Pickup: models.Place{City: "enugu"}, Dropoff: models.Place{City: "owerri"}},
	}}
	svc := TripService{Finder: f, All: f}

	got, err := svc.Results(context.Background(), []string{"t1", "t2", "t1", " "}, "owerri")
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t2" {
		t.Fatalf("unexpected results %+v", got)
	}
	if got[0].Pickup.City != "Enugu" || got[0].Dropoff.City != "Owerri" {
		t.Fatalf("unexpected places %+v %+v", got[0].Pickup, got[0].Dropoff)
	}
	if _, err := svc.Results(context.Background(), nil, ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripAdminListPagesByFive(t *testing.T) {
	f := &fakeBackend{}
	for i := 0; i < 12; i++ {
		f.trips = append(f.trips, models.Trip{ID: fmt.Sprintf("t%d", i), TripName: "Trip"})
	}
	page, err := TripService{Finder: f, All: f}.AdminList(context.Background(), "tok", "", 9)
	if err != nil {
		t.Fatalf("AdminList error: %v", err)
	}
	if page.Page != 3 || page.TotalPages != 3 || len(page.Records) != 2 {
		t.Fatalf("unexpected page %+v", page.Pagination)
	}
	if page.Records[1].ID != "t0" {
		t.Fatalf("expected oldest trip last, got %s", page.Records[1].ID)
	}
}
