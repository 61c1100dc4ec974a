package backend

import (
	"context"
	"net/http"

	"console/internal/domain/models"
)

type tripsResponse struct {
	Trips []models.Trip `json:"trips"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

// FetchAllTrips lists every trip in backend order.
func (c *Client) FetchAllTrips(ctx context.Context, adminToken string) ([]models.Trip, error) {
	var resp tripsResponse
	if err := c.do(ctx, "fetch trips", http.MethodGet, "/trips/fetch-all-trips", adminToken, nil, &resp); err != nil {
		return nil, err
	}
	return nonNilTrips(resp.Trips), nil
}

// SearchTripsByID re-reads trips by their document ids.
func (c *Client) SearchTripsByID(ctx context.Context, ids []string) ([]models.Trip, error) {
	return c.searchTrips(ctx, "/trips/search-trips-by-id", ids)
}

// SearchTripsByIDs is the batch variant of SearchTripsByID.
func (c *Client) SearchTripsByIDs(ctx context.Context, ids []string) ([]models.Trip, error) {
	return c.searchTrips(ctx, "/trips/search-trips-by-ids", ids)
}

func (c *Client) searchTrips(ctx context.Context, path string, ids []string) ([]models.Trip, error) {
	var resp tripsResponse
	if err := c.do(ctx, "search trips", http.MethodPost, path, "", idsRequest{IDs: ids}, &resp); err != nil {
		return nil, err
	}
	return nonNilTrips(resp.Trips), nil
}

func nonNilTrips(in []models.Trip) []models.Trip {
	if in == nil {
		return []models.Trip{}
	}
	return in
}
