package services

import (
	"context"
	"encoding/json"
	"sync"

	"console/internal/backend"
	"console/internal/domain/models"
	"console/internal/session"
)

// fakeBackend stands in for *backend.Client in service tests.
type fakeBackend struct {
	mu sync.Mutex

	batch       backend.BookingBatch
	bookingsErr error
	trips       []models.Trip
	tripsErr    error
	byID        map[string]models.Trip

	cities      []models.City
	added       []models.City
	updated     models.City
	deletedID   string
	userBooking []models.UserBooking

	login     backend.Login
	loginErr  error
	sentTo    string
	payInit   models.PaymentInit
	payReq    models.PaymentRequest
	verifyReq models.PaymentVerifyRequest
	confirm   models.PaymentConfirmation
	verifyErr error
}

func (f *fakeBackend) FetchBookings(ctx context.Context, _ string) (backend.BookingBatch, error) {
	if err := ctx.Err(); err != nil {
		return backend.BookingBatch{}, err
	}
	return f.batch, f.bookingsErr
}

func (f *fakeBackend) FetchAllTrips(_ context.Context, _ string) ([]models.Trip, error) {
	return f.trips, f.tripsErr
}

func (f *fakeBackend) SearchTripsByID(_ context.Context, ids []string) ([]models.Trip, error) {
	var out []models.Trip
	for _, id := range ids {
		if t, ok := f.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeBackend) SearchTripsByIDs(ctx context.Context, ids []string) ([]models.Trip, error) {
	return f.SearchTripsByID(ctx, ids)
}

func (f *fakeBackend) ListCities(context.Context, string) ([]models.City, error) {
	return f.cities, nil
}

func (f *fakeBackend) AddCities(_ context.Context, _ string, cities []models.City) error {
	f.added = append(f.added, cities...)
	return nil
}

func (f *fakeBackend) UpdateCity(_ context.Context, _ string, city models.City) error {
	f.updated = city
	return nil
}

func (f *fakeBackend) DeleteCity(_ context.Context, _, id string) error {
	f.deletedID = id
	return nil
}

func (f *fakeBackend) AdminLogin(_ context.Context, email string) (string, error) {
	f.sentTo = email
	return "", nil
}

func (f *fakeBackend) AdminResendOTP(_ context.Context, email string) (string, error) {
	f.sentTo = email
	return "resent", nil
}

func (f *fakeBackend) AdminVerifyOTP(context.Context, string, string) (backend.Login, error) {
	return f.login, f.loginErr
}

func (f *fakeBackend) UserSendOTP(_ context.Context, email string) (string, error) {
	f.sentTo = email
	return "OTP sent to " + email, nil
}

func (f *fakeBackend) UserVerifyOTP(context.Context, string, string) (backend.Login, error) {
	return f.login, f.loginErr
}

func (f *fakeBackend) CreatePayment(_ context.Context, _ string, req models.PaymentRequest) (models.PaymentInit, error) {
	f.payReq = req
	return f.payInit, nil
}

func (f *fakeBackend) VerifyPayment(_ context.Context, _ string, req models.PaymentVerifyRequest) (models.PaymentConfirmation, error) {
	f.verifyReq = req
	return f.confirm, f.verifyErr
}

func (f *fakeBackend) FetchUserBookings(context.Context, string, string) ([]models.UserBooking, error) {
	return f.userBooking, nil
}

func signedIn() *session.Context {
	s := session.New()
	profile, _ := json.Marshal(models.User{ID: "u1", Email: "ada@example.com", Name: "Ada"})
	s.SetUser("user-token", profile)
	return s
}

func rawBooking(code, email string, seat int, date string) models.RawBookingRecord {
	return models.RawBookingRecord{
		BookingCode:    code,
		PassengerEmail: email,
		Route:          "Lagos - Abuja",
		SeatID:         code + "-seat",
		SeatPosition:   seat,
		Amount:         15000,
		Date:           "2025-03-01T09:30:00Z",
		TripDetails: models.TripDetails{
			TripName: "Lagos Express",
			Bus:      "BUS-1",
			Pickup:   models.Place{City: "Lagos", Location: "Jibowu"},
			Dropoff:  models.Place{City: "Abuja", Location: "Utako"},
			Takeoff:  models.Takeoff{Date: date, Time: "8:00 AM"},
		},
	}
}
