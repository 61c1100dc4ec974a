package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"console/internal/domain"
	"console/internal/domain/models"
)

// FetchBookings lists every seat-level booking row (admin token required).
func (c *Client) FetchBookings(ctx context.Context, adminToken string) (BookingBatch, error) {
	var resp struct {
		Bookings []json.RawMessage `json:"bookings"`
	}
	if err := c.do(ctx, "fetch bookings", http.MethodGet, "/trips/bookings", adminToken, nil, &resp); err != nil {
		return BookingBatch{}, err
	}
	return decodeBookings(resp.Bookings), nil
}

// FetchUserBookings lists the bookings of one customer.
func (c *Client) FetchUserBookings(ctx context.Context, userID, token string) ([]models.UserBooking, error) {
	if userID == "" {
		return nil, domain.ValidationError{Field: "userId", Msg: "User ID not found"}
	}
	var resp struct {
		Bookings []models.UserBooking `json:"bookings"`
	}
	path := "/pay/trips/" + url.PathEscape(userID)
	if err := c.do(ctx, "fetch user bookings", http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Bookings == nil {
		resp.Bookings = []models.UserBooking{}
	}
	return resp.Bookings, nil
}
