package services

import (
	"context"

	"console/internal/backend"
	"console/internal/domain/models"
)

// The narrow views of *backend.Client each service depends on.

type BookingSource interface {
	FetchBookings(ctx context.Context, adminToken string) (backend.BookingBatch, error)
}

type TripSource interface {
	FetchAllTrips(ctx context.Context, adminToken string) ([]models.Trip, error)
}

type TripFinder interface {
	SearchTripsByID(ctx context.Context, ids []string) ([]models.Trip, error)
	SearchTripsByIDs(ctx context.Context, ids []string) ([]models.Trip, error)
}

type CityStore interface {
	ListCities(ctx context.Context, adminToken string) ([]models.City, error)
	AddCities(ctx context.Context, adminToken string, cities []models.City) error
	UpdateCity(ctx context.Context, adminToken string, city models.City) error
	DeleteCity(ctx context.Context, adminToken, id string) error
}

type AuthClient interface {
	AdminLogin(ctx context.Context, email string) (string, error)
	AdminResendOTP(ctx context.Context, email string) (string, error)
	AdminVerifyOTP(ctx context.Context, email, otp string) (backend.Login, error)
	UserSendOTP(ctx context.Context, email string) (string, error)
	UserVerifyOTP(ctx context.Context, email, otp string) (backend.Login, error)
}

type PaymentClient interface {
	CreatePayment(ctx context.Context, token string, req models.PaymentRequest) (models.PaymentInit, error)
	VerifyPayment(ctx context.Context, token string, req models.PaymentVerifyRequest) (models.PaymentConfirmation, error)
}

type UserBookingSource interface {
	FetchUserBookings(ctx context.Context, userID, token string) ([]models.UserBooking, error)
}
