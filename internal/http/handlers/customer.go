package handlers

import (
	"net/http"

	"console/internal/http/middleware"
	"console/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) SendOTP(c *gin.Context) {
	var req emailRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	msg, err := h.auth(c).UserSendOTP(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handlers) VerifyOTP(c *gin.Context) {
	var req otpRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	if err := h.auth(c).UserVerifyOTP(c.Request.Context(), sess, req.Email, req.OTP); err != nil {
		RespondDomainError(c, err)
		return
	}
	user, _ := sess.User()
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified", "user": user})
}

func (h *Handlers) Logout(c *gin.Context) {
	h.auth(c).UserLogout(middleware.GetSession(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func Me(c *gin.Context) {
	user, _ := middleware.GetSession(c).User()
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handlers) StartCheckout(c *gin.Context) {
	var req services.CheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	init, err := h.checkout(c).Start(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, init)
}

// VerifyCheckout confirms a payment. The reference may come from the body,
// from ?reference= (the gateway callback) or from the session.
func (h *Handlers) VerifyCheckout(c *gin.Context) {
	var req verifyPaymentRequest
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &req) {
		return
	}
	ref := req.Reference
	if ref == "" {
		ref = c.Query("reference")
	}
	conf, err := h.checkout(c).Verify(c.Request.Context(), middleware.GetSession(c), ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}

// MyTrips lists the customer's bookings. Query: tab, page.
func (h *Handlers) MyTrips(c *gin.Context) {
	page, err := h.myTrips(c).List(c.Request.Context(), middleware.GetSession(c), c.Query("tab"), pageParam(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handlers) MyTripETicket(c *gin.Context) {
	data, name, err := h.myTrips(c).Ticket(c.Request.Context(), middleware.GetSession(c), c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, name, data)
}
