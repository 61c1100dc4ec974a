package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminTrips serves one page of the admin trip list. Query: q, page.
func (h *Handlers) AdminTrips(c *gin.Context) {
	page, err := h.trips(c).AdminList(c.Request.Context(), adminToken(c), c.Query("q"), pageParam(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SearchTrips refreshes trip results. Query: ids (comma separated or
// repeated), q.
func (h *Handlers) SearchTrips(c *gin.Context) {
	var ids []string
	for _, v := range c.QueryArray("ids") {
		ids = append(ids, strings.Split(v, ",")...)
	}
	trips, err := h.trips(c).Results(c.Request.Context(), ids, c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

func (h *Handlers) GetTrip(c *gin.Context) {
	trip, err := h.trips(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
