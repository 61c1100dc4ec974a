package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"console/internal/bookingview"
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/session"
	"console/internal/utils"
)

const (
	TabAll      = "all"
	TabUpcoming = "upcoming"
	TabPast     = "past"
)

// MyTripsService lists the signed-in customer's bookings.
type MyTripsService struct {
	Source     UserBookingSource
	Normalizer bookingview.Normalizer
	Docs       DocsService
	Now        func() time.Time
	RequestID  string
}

func (s MyTripsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s MyTripsService) load(ctx context.Context, sess *session.Context) ([]models.UserBooking, models.User, error) {
	user, err := signedInUser(sess)
	if err != nil {
		return nil, models.User{}, err
	}
	bookings, err := s.Source.FetchUserBookings(ctx, user.ID, sess.UserToken())
	if err != nil {
		return nil, models.User{}, err
	}
	return bookings, user, nil
}

// List filters by tab, orders by creation time newest first and pages by 5.
// Bookings without a readable takeoff date are dropped on every tab.
func (s MyTripsService) List(ctx context.Context, sess *session.Context, tab string, page int) (domain.Page[models.UserBooking], error) {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		tab = TabAll
	}
	if tab != TabAll && tab != TabUpcoming && tab != TabPast {
		return domain.Page[models.UserBooking]{}, domain.ValidationError{Field: "tab", Msg: "tab must be all, upcoming or past"}
	}
	bookings, _, err := s.load(ctx, sess)
	if err != nil {
		return domain.Page[models.UserBooking]{}, err
	}

	now := s.now()
	kept := make([]models.UserBooking, 0, len(bookings))
	for _, b := range bookings {
		at, ok := s.Normalizer.TakeoffInstant(b.Trip.Takeoff)
		if !ok {
			continue
		}
		if tab == TabAll || (tab == TabUpcoming) == at.After(now) {
			kept = append(kept, b)
		}
	}
	s.sortByCreated(kept)

	screen := bookingview.NewScreen(kept, bookingview.TripsPageSize, nil)
	screen.SetPage(page)
	return screen.Page(), nil
}

// sortByCreated orders newest first; unreadable timestamps sink to the end.
func (s MyTripsService) sortByCreated(bookings []models.UserBooking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ti, okI := utils.ParseTimestamp(bookings[i].CreatedAt, s.Normalizer.Loc)
		tj, okJ := utils.ParseTimestamp(bookings[j].CreatedAt, s.Normalizer.Loc)
		if okI && okJ {
			return ti.After(tj)
		}
		return okI && !okJ
	})
}

// Ticket renders the e-ticket PDF of one of the customer's bookings.
func (s MyTripsService) Ticket(ctx context.Context, sess *session.Context, code string) ([]byte, string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, "", domain.ValidationError{Field: "bookingCode", Msg: "booking code is required"}
	}
	bookings, user, err := s.load(ctx, sess)
	if err != nil {
		return nil, "", err
	}
	for _, b := range bookings {
		if strings.EqualFold(b.BookingCode, code) {
			docs := s.Docs
			if docs.RequestID == "" {
				docs.RequestID = s.RequestID
			}
			return docs.ETicket(b, user)
		}
	}
	return nil, "", domain.NotFoundError{Resource: "booking"}
}
