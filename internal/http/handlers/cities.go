package handlers

import (
	"net/http"

	"console/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListCities(c *gin.Context) {
	cities, err := h.cities(c).List(c.Request.Context(), adminToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *Handlers) CreateCity(c *gin.Context) {
	var in models.City
	if !BindJSONOrError(c, &in) {
		return
	}
	city, err := h.cities(c).Create(c.Request.Context(), adminToken(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "City added", "city": city})
}

func (h *Handlers) UpdateCity(c *gin.Context) {
	var in models.City
	if !BindJSONOrError(c, &in) {
		return
	}
	city, err := h.cities(c).Update(c.Request.Context(), adminToken(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City updated", "city": city})
}

func (h *Handlers) DeleteCity(c *gin.Context) {
	if err := h.cities(c).Delete(c.Request.Context(), adminToken(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
}
