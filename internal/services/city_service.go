package services

import (
	"context"
	"strings"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"
)

const defaultCountry = "Nigeria"

// CityService manages cities and their terminals.
type CityService struct {
	Store     CityStore
	RequestID string
}

func (s CityService) List(ctx context.Context, adminToken string) ([]models.City, error) {
	return s.Store.ListCities(ctx, adminToken)
}

func (s CityService) Create(ctx context.Context, adminToken string, in models.City) (models.City, error) {
	city, err := cleanCity(in)
	if err != nil {
		return models.City{}, err
	}
	city.ID = ""
	if err := s.Store.AddCities(ctx, adminToken, []models.City{city}); err != nil {
		return models.City{}, err
	}
	utils.LogEvent(s.RequestID, "cities", "create", "name="+city.Name)
	return city, nil
}

func (s CityService) Update(ctx context.Context, adminToken, id string, in models.City) (models.City, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.City{}, domain.ValidationError{Field: "id", Msg: "city id is required"}
	}
	city, err := cleanCity(in)
	if err != nil {
		return models.City{}, err
	}
	city.ID = id
	if err := s.Store.UpdateCity(ctx, adminToken, city); err != nil {
		return models.City{}, err
	}
	utils.LogEvent(s.RequestID, "cities", "update", "id="+id)
	return city, nil
}

func (s CityService) Delete(ctx context.Context, adminToken, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "city id is required"}
	}
	if err := s.Store.DeleteCity(ctx, adminToken, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "cities", "delete", "id="+id)
	return nil
}

func cleanCity(in models.City) (models.City, error) {
	out := models.City{
		ID:       in.ID,
		Name:     utils.NormalizeSpace(in.Name),
		State:    utils.NormalizeSpace(in.State),
		Country:  utils.FirstNonEmpty(utils.NormalizeSpace(in.Country), defaultCountry),
		Terminal: utils.NormalizeSpace(in.Terminal),
	}
	if out.Name == "" {
		return models.City{}, domain.ValidationError{Field: "name", Msg: "city name is required"}
	}
	if out.Terminal == "" {
		return models.City{}, domain.ValidationError{Field: "terminal", Msg: "terminal is required"}
	}
	return out, nil
}
