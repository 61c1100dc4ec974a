package services

import (
	"context"
	"strings"
	"time"

	"console/internal/backend"
	"console/internal/bookingview"
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/fetch"
	"console/internal/utils"
)

// BookingService builds the admin booking views from a fresh backend snapshot
// on every call.
type BookingService struct {
	Source     BookingSource
	Normalizer bookingview.Normalizer
	Now        func() time.Time
	RequestID  string
}

// BookingDetail is one booking plus its display-formatted booking date.
type BookingDetail struct {
	models.NormalizedBooking
	DateDisplay string `json:"dateDisplay"`
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Load fetches every booking row and normalizes it. Rows rejected at the
// boundary are logged and left out.
func (s BookingService) Load(ctx context.Context, adminToken string) ([]models.NormalizedBooking, error) {
	task := fetch.Start(ctx, func(ctx context.Context) (backend.BookingBatch, error) {
		return s.Source.FetchBookings(ctx, adminToken)
	})
	out, err := fetch.Then(task, func(batch backend.BookingBatch) []models.NormalizedBooking {
		for _, issue := range batch.Rejected {
			utils.LogEvent(s.RequestID, "bookings", "reject_row",
				utils.LogFields("index", issue.Index, "code", issue.BookingCode, "reason", issue.Reason))
		}
		return s.Normalizer.Normalize(batch.Records, s.now())
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "bookings", "load", "error="+err.Error())
		return nil, err
	}
	utils.LogEvent(s.RequestID, "bookings", "load", utils.LogFields("bookings", len(out)))
	return out, nil
}

// List is one page of the bookings management screen.
func (s BookingService) List(ctx context.Context, adminToken, term string, page int) (domain.Page[models.NormalizedBooking], error) {
	all, err := s.Load(ctx, adminToken)
	if err != nil {
		return domain.Page[models.NormalizedBooking]{}, err
	}
	screen := bookingview.NewBookingsScreen(all)
	screen.SetSearch(strings.TrimSpace(term))
	screen.SetPage(page)
	return screen.Page(), nil
}

// Export is the filtered list in its download shape plus the file name.
func (s BookingService) Export(ctx context.Context, adminToken, term string) (bookingview.BookingsExport, string, error) {
	all, err := s.Load(ctx, adminToken)
	if err != nil {
		return bookingview.BookingsExport{}, "", err
	}
	filtered := bookingview.Search(all, strings.TrimSpace(term))
	if filtered == nil {
		filtered = []models.NormalizedBooking{}
	}
	name := bookingview.ExportFilename(bookingview.PrefixBookings, s.now())
	return bookingview.BookingsExport{Bookings: filtered}, name, nil
}

// Detail finds one booking by code, ignoring case.
func (s BookingService) Detail(ctx context.Context, adminToken, code string) (BookingDetail, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return BookingDetail{}, domain.ValidationError{Field: "bookingCode", Msg: "booking code is required"}
	}
	all, err := s.Load(ctx, adminToken)
	if err != nil {
		return BookingDetail{}, err
	}
	for _, b := range all {
		if strings.EqualFold(b.BookingCode, code) {
			return BookingDetail{
				NormalizedBooking: b,
				DateDisplay:       utils.FormatDisplay(b.Date, s.Normalizer.Loc),
			}, nil
		}
	}
	return BookingDetail{}, domain.NotFoundError{Resource: "booking"}
}
