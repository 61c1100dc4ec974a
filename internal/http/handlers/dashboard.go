package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Dashboard(c *gin.Context) {
	d, err := h.dashboard(c).Load(c.Request.Context(), adminToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DashboardExport downloads the admin report.
func (h *Handlers) DashboardExport(c *gin.Context) {
	payload, name, err := h.dashboard(c).Report(c.Request.Context(), adminToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExport(c, name, payload)
}

// SettingsBackup downloads every trip and booking.
func (h *Handlers) SettingsBackup(c *gin.Context) {
	payload, name, err := h.settings(c).Backup(c.Request.Context(), adminToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExport(c, name, payload)
}
