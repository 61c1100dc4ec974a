package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"console/internal/bookingview"
	"console/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// pageParam reads ?page=, defaulting to 1. Clamping happens in the view.
func pageParam(c *gin.Context) int {
	p, err := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// sendExport streams payload as a JSON file download.
func sendExport(c *gin.Context, filename string, payload any) {
	var buf bytes.Buffer
	if err := bookingview.ExportJSON(&buf, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
