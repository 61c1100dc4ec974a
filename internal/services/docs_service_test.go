package services

import (
	"bytes"
	"testing"

	"console/internal/domain"
	"console/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{RequestID: "req-1"}

	pdf, filename, err := svc.ETicket(userBooking("AB/12", "2025-08-10", ""), models.User{Email: "ada@example.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("ETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename != "ETICKET_AB_12_4.pdf" {
		t.Fatalf("unexpected e-ticket %q", filename)
	}

	slip, slipName, err := svc.BookingSlip(BookingDetail{
		NormalizedBooking: models.NormalizedBooking{BookingCode: "AB12", Amount: 1500, Status: domain.StatusScheduled},
		DateDisplay:       "N/A",
	})
	if err != nil {
		t.Fatalf("BookingSlip returned error: %v", err)
	}
	if !bytes.HasPrefix(slip, []byte("%PDF")) || slipName != "BOOKING_AB12.pdf" {
		t.Fatalf("unexpected slip %q", slipName)
	}
}

func TestPdfMoney(t *testing.T) {
	if got := pdfMoney(1250000); got != "NGN 1,250,000" {
		t.Fatalf("unexpected %q", got)
	}
}
