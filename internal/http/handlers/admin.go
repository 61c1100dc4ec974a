package handlers

import (
	"encoding/json"
	"net/http"

	"console/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// AdminLogin asks the backend to mail an OTP to the admin.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req emailRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	msg, err := h.auth(c).AdminLogin(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handlers) AdminResendOTP(c *gin.Context) {
	var req emailRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	msg, err := h.auth(c).AdminResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handlers) AdminVerifyOTP(c *gin.Context) {
	var req otpRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	if err := h.auth(c).AdminVerifyOTP(c.Request.Context(), sess, req.Email, req.OTP); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": sess.AdminData()})
}

func (h *Handlers) AdminLogout(c *gin.Context) {
	h.auth(c).AdminLogout(middleware.GetSession(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AdminMe returns the stored admin profile as-is.
func AdminMe(c *gin.Context) {
	data := middleware.GetSession(c).AdminData()
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	c.JSON(http.StatusOK, gin.H{"admin": data})
}
