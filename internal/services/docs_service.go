package services

import (
	"bytes"
	"fmt"
	"strings"

	"console/internal/domain/models"
	"console/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDF e-tickets and admin booking slips.
type DocsService struct {
	RequestID string
}

// ETicket renders the customer's ticket for one booked seat.
func (s DocsService) ETicket(b models.UserBooking, u models.User) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "code="+b.BookingCode)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ORRO MOTORS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(utils.FirstNonEmpty(u.Name, u.Email), "-")),
		fmt.Sprintf("Email        : %s", safe(u.Email, "-")),
		fmt.Sprintf("Booking Code : %s", safe(b.BookingCode, "-")),
		fmt.Sprintf("Trip         : %s", safe(b.Trip.TripName, "-")),
		fmt.Sprintf("From         : %s", place(b.Trip.Pickup)),
		fmt.Sprintf("To           : %s", place(b.Trip.Dropoff)),
		fmt.Sprintf("Departure    : %s %s", safe(dateOnly(b.Trip.Takeoff.Date), "-"), safe(b.Trip.Takeoff.Time, "")),
		fmt.Sprintf("Seat         : %d", seatNumber(b)),
		fmt.Sprintf("Amount Paid  : %s", pdfMoney(b.Amount)),
		fmt.Sprintf("Reference    : %s", safe(b.PaymentReference, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Present it at the terminal before boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s_%d.pdf", safeFilenamePart(b.BookingCode), seatNumber(b))
	return buf.Bytes(), filename, nil
}

// BookingSlip renders the admin view of one normalized booking.
func (s DocsService) BookingSlip(d BookingDetail) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_slip", "code="+d.BookingCode)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING "+safe(d.BookingCode, "-"))
	pdf.Ln(12)

	td := d.TripDetails
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger : %s", safe(d.PassengerEmail, "-")),
		fmt.Sprintf("Route     : %s", safe(d.Route, "-")),
		fmt.Sprintf("Trip      : %s (%s)", td.TripName, td.TripID),
		fmt.Sprintf("Bus       : %s", td.Bus),
		fmt.Sprintf("From      : %s", place(td.Pickup)),
		fmt.Sprintf("To        : %s", place(td.Dropoff)),
		fmt.Sprintf("Takeoff   : %s %s", safe(dateOnly(td.Takeoff.Date), "-"), td.Takeoff.Time),
		fmt.Sprintf("Seat      : %d", d.SeatPosition),
		fmt.Sprintf("Amount    : %s", pdfMoney(d.Amount)),
		fmt.Sprintf("Status    : %s", d.Status),
		fmt.Sprintf("Booked    : %s", d.DateDisplay),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("BOOKING_%s.pdf", safeFilenamePart(d.BookingCode)), nil
}

func seatNumber(b models.UserBooking) int {
	if b.Seat.Position > 0 {
		return b.Seat.Position
	}
	return b.Position
}

func place(p models.Place) string {
	if p.City != "" && p.Location != "" {
		return p.City + " - " + p.Location
	}
	return safe(utils.FirstNonEmpty(p.City, p.Location), "-")
}

// pdfMoney spells the currency out since the core PDF fonts lack the naira sign.
func pdfMoney(v float64) string {
	return "NGN " + strings.Replace(utils.FormatNaira(v), "₦", "", 1)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
