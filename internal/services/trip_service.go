package services

import (
	"context"
	"sort"
	"strings"

	"console/internal/bookingview"
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"
)

// TripService serves the trip results, seat selection and admin trip list.
type TripService struct {
	Finder    TripFinder
	All       TripSource
	RequestID string
}

// Results refreshes a set of trips by id and filters them by term over trip
// name, pickup city and dropoff city.
func (s TripService) Results(ctx context.Context, ids []string, term string) ([]models.Trip, error) {
	ids = utils.UniqueStrings(ids)
	if len(ids) == 0 {
		return nil, domain.ValidationError{Field: "ids", Msg: "at least one trip id is required"}
	}
	trips, err := s.Finder.SearchTripsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := bookingview.SearchTrips(trips, strings.TrimSpace(term))
	out := make([]models.Trip, 0, len(found))
	for _, t := range found {
		out = append(out, titledPlaces(t))
	}
	return out, nil
}

// Get looks up one trip for seat selection. Seats come back ordered by
// position.
func (s TripService) Get(ctx context.Context, id string) (models.Trip, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "trip id is required"}
	}
	trips, err := s.Finder.SearchTripsByID(ctx, []string{id})
	if err != nil {
		return models.Trip{}, err
	}
	if len(trips) == 0 {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	trip := titledPlaces(trips[0])
	seats := make([]models.Seat, len(trip.Seats))
	copy(seats, trip.Seats)
	sort.SliceStable(seats, func(i, j int) bool { return seats[i].Position < seats[j].Position })
	trip.Seats = seats
	return trip, nil
}

// AdminList is one page of the admin trip list, newest first.
func (s TripService) AdminList(ctx context.Context, adminToken, term string, page int) (domain.Page[models.Trip], error) {
	trips, err := s.All.FetchAllTrips(ctx, adminToken)
	if err != nil {
		return domain.Page[models.Trip]{}, err
	}
	screen := bookingview.NewTripsScreen(newestFirst(trips))
	screen.SetSearch(strings.TrimSpace(term))
	screen.SetPage(page)
	return screen.Page(), nil
}

// titledPlaces formats pickup and dropoff for display.
func titledPlaces(t models.Trip) models.Trip {
	t.Pickup = models.Place{City: utils.ToTitleCase(t.Pickup.City), Location: utils.ToTitleCase(t.Pickup.Location)}
	t.Dropoff = models.Place{City: utils.ToTitleCase(t.Dropoff.City), Location: utils.ToTitleCase(t.Dropoff.Location)}
	return t
}
