package backend

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

// CreatePayment opens a Paystack checkout for the selected seats.
func (c *Client) CreatePayment(ctx context.Context, token string, req models.PaymentRequest) (models.PaymentInit, error) {
	var resp models.PaymentInit
	if err := c.do(ctx, "initialize payment", http.MethodPost, "/pay/create-paystack-payment", token, req, &resp); err != nil {
		return models.PaymentInit{}, err
	}
	if resp.AuthorizationURL == "" {
		return models.PaymentInit{}, domain.RejectedError{Op: "initialize payment", Msg: "Payment initialization failed"}
	}
	return resp, nil
}

// VerifyPayment confirms a payment reference and returns the booked seats.
func (c *Client) VerifyPayment(ctx context.Context, token string, req models.PaymentVerifyRequest) (models.PaymentConfirmation, error) {
	var resp models.PaymentConfirmation
	if err := c.do(ctx, "verify payment", http.MethodPost, "/pay/verify-payment", token, req, &resp); err != nil {
		return models.PaymentConfirmation{}, err
	}
	if resp.Bookings == nil {
		resp.Bookings = []models.PaidSeat{}
	}
	return resp, nil
}
