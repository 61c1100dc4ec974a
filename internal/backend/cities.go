package backend

import (
	"context"
	"net/http"
	"net/url"

	"console/internal/domain/models"
)

// ListCities returns all cities with their terminals.
func (c *Client) ListCities(ctx context.Context, adminToken string) ([]models.City, error) {
	var resp struct {
		Data []models.City `json:"data"`
	}
	if err := c.do(ctx, "load cities", http.MethodGet, "/cities", adminToken, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []models.City{}
	}
	return resp.Data, nil
}

// AddCities creates cities in one call.
func (c *Client) AddCities(ctx context.Context, adminToken string, cities []models.City) error {
	body := struct {
		Cities []models.City `json:"cities"`
	}{Cities: cities}
	return c.do(ctx, "add cities", http.MethodPost, "/cities/add", adminToken, body, nil)
}

// UpdateCity replaces the city with the same id.
func (c *Client) UpdateCity(ctx context.Context, adminToken string, city models.City) error {
	return c.do(ctx, "update city", http.MethodPut, "/cities/"+url.PathEscape(city.ID), adminToken, city, nil)
}

// DeleteCity removes a city and its terminal.
func (c *Client) DeleteCity(ctx context.Context, adminToken, id string) error {
	return c.do(ctx, "delete city", http.MethodDelete, "/cities/"+url.PathEscape(id), adminToken, nil, nil)
}
