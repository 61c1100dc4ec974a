package services

import (
	"context"
	"net/url"
	"strings"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/session"
	"console/internal/utils"
)

// CheckoutService opens and confirms Paystack payments for selected seats.
type CheckoutService struct {
	Payments  PaymentClient
	Trips     TripFinder
	PublicURL string
	RequestID string
}

type CheckoutRequest struct {
	TripID  string   `json:"tripId"`
	SeatIDs []string `json:"seatIds"`
}

func signedInUser(sess *session.Context) (models.User, error) {
	u, ok := sess.User()
	if !ok || sess.UserToken() == "" || strings.TrimSpace(u.Email) == "" {
		return models.User{}, domain.UnauthorizedError{Msg: "Please sign in to continue"}
	}
	return u, nil
}

// Start prices the seats from the trip, opens the payment and remembers the
// seats and reference for verification.
func (s CheckoutService) Start(ctx context.Context, sess *session.Context, req CheckoutRequest) (models.PaymentInit, error) {
	user, err := signedInUser(sess)
	if err != nil {
		return models.PaymentInit{}, err
	}
	seats := utils.UniqueStrings(req.SeatIDs)
	if len(seats) == 0 {
		return models.PaymentInit{}, domain.ValidationError{Field: "seatIds", Msg: "Please select at least one seat"}
	}
	tripID := strings.TrimSpace(req.TripID)
	if tripID == "" {
		return models.PaymentInit{}, domain.ValidationError{Field: "tripId", Msg: "trip id is required"}
	}
	trips, err := s.Trips.SearchTripsByID(ctx, []string{tripID})
	if err != nil {
		return models.PaymentInit{}, err
	}
	if len(trips) == 0 {
		return models.PaymentInit{}, domain.NotFoundError{Resource: "trip"}
	}

	payReq := models.PaymentRequest{
		Email:       user.Email,
		Amount:      trips[0].Price * float64(len(seats)),
		CallbackURL: s.callbackURL(user.Email),
		SeatIDs:     seats,
		UserID:      user.ID,
		TripID:      tripID,
	}
	init, err := s.Payments.CreatePayment(ctx, sess.UserToken(), payReq)
	if err != nil {
		return models.PaymentInit{}, err
	}
	sess.SetSelectedSeatIDs(seats)
	sess.SetPaymentReference(init.Reference)
	utils.LogEvent(s.RequestID, "checkout", "start", utils.LogFields("seats", len(seats), "reference", init.Reference))
	return init, nil
}

func (s CheckoutService) callbackURL(email string) string {
	return strings.TrimRight(s.PublicURL, "/") + "/payment-success?email=" + url.QueryEscape(email)
}

// Verify confirms the payment for the seats remembered at Start. The
// reference argument wins over the one in the session.
func (s CheckoutService) Verify(ctx context.Context, sess *session.Context, reference string) (models.PaymentConfirmation, error) {
	user, err := signedInUser(sess)
	if err != nil {
		return models.PaymentConfirmation{}, err
	}
	ref := utils.FirstNonEmpty(strings.TrimSpace(reference), sess.PaymentReference())
	if ref == "" {
		return models.PaymentConfirmation{}, domain.ValidationError{Field: "reference", Msg: "payment reference is required"}
	}
	seats := utils.UniqueStrings(sess.SelectedSeatIDs())
	if len(seats) == 0 {
		return models.PaymentConfirmation{}, domain.ValidationError{Field: "seatIds", Msg: "no seats selected for this payment"}
	}

	conf, err := s.Payments.VerifyPayment(ctx, sess.UserToken(), models.PaymentVerifyRequest{
		Email:     user.Email,
		SeatIDs:   seats,
		Reference: ref,
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "verify", "error="+err.Error())
		return models.PaymentConfirmation{}, err
	}
	conf.TotalPaid = 0
	for _, b := range conf.Bookings {
		conf.TotalPaid += b.Amount
	}
	sess.ClearSelectedSeatIDs()
	utils.LogEvent(s.RequestID, "checkout", "verify", utils.LogFields("reference", ref, "bookings", len(conf.Bookings)))
	return conf, nil
}
