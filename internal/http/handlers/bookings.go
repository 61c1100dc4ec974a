package handlers

import (
	"net/http"

	"console/internal/http/middleware"
	"console/internal/services"

	"github.com/gin-gonic/gin"
)

// ListBookings serves one page of the bookings list. Query: q, page.
func (h *Handlers) ListBookings(c *gin.Context) {
	page, err := h.bookings(c).List(c.Request.Context(), adminToken(c), c.Query("q"), pageParam(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ExportBookings downloads the bookings matching q.
func (h *Handlers) ExportBookings(c *gin.Context) {
	payload, name, err := h.bookings(c).Export(c.Request.Context(), adminToken(c), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExport(c, name, payload)
}

func (h *Handlers) GetBooking(c *gin.Context) {
	d, err := h.bookings(c).Detail(c.Request.Context(), adminToken(c), c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetBookingPDF renders the booking slip inline.
func (h *Handlers) GetBookingPDF(c *gin.Context) {
	d, err := h.bookings(c).Detail(c.Request.Context(), adminToken(c), c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, name, err := services.DocsService{RequestID: middleware.GetRequestID(c)}.BookingSlip(d)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, name, data)
}
