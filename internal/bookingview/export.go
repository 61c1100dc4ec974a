package bookingview

import (
	"encoding/json"
	"io"
	"time"

	"console/internal/domain/models"
	"console/internal/utils"
)

const (
	PrefixBookings = "bookings-export"
	PrefixReport   = "admin-report"
	PrefixBackup   = "orro-motors-backup"
)

// BookingsExport is the bookings management download.
type BookingsExport struct {
	Bookings []models.NormalizedBooking `json:"bookings"`
}

// ReportExport is the dashboard download.
type ReportExport struct {
	Bookings []models.NormalizedBooking `json:"bookings"`
	Trips    []models.Trip              `json:"trips"`
}

// BackupExport is the settings/tools download.
type BackupExport struct {
	Trips    []models.Trip              `json:"trips"`
	Bookings []models.NormalizedBooking `json:"bookings"`
}

// ExportJSON writes payload as JSON indented with two spaces. The whole
// payload is encoded in one go.
func ExportJSON(w io.Writer, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFilename is "<prefix>-YYYY-MM-DD.json" for the date of now.
func ExportFilename(prefix string, now time.Time) string {
	return prefix + "-" + utils.FormatDate(now) + ".json"
}
