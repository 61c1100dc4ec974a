package bookingview

import (
	"console/internal/domain"
	"console/internal/domain/models"
)

// Screen is the state of a searchable, paged list: the full snapshot, the
// current search term and the current page.
type Screen[T any] struct {
	all      []T
	filtered []T
	term     string
	page     int
	pageSize int
	search   func([]T, string) []T
}

// NewScreen starts on page 1 with no search term.
func NewScreen[T any](records []T, pageSize int, search func([]T, string) []T) *Screen[T] {
	s := &Screen[T]{all: records, pageSize: pageSize, search: search, page: 1}
	s.filtered = s.apply("")
	return s
}

// NewBookingsScreen is the bookings management list, 20 per page.
func NewBookingsScreen(records []models.NormalizedBooking) *Screen[models.NormalizedBooking] {
	return NewScreen(records, BookingsPageSize, Search)
}

// NewTripsScreen is the trip list, 5 per page.
func NewTripsScreen(trips []models.Trip) *Screen[models.Trip] {
	return NewScreen(trips, TripsPageSize, SearchTrips)
}

func (s *Screen[T]) apply(term string) []T {
	if s.search == nil {
		return s.all
	}
	return s.search(s.all, term)
}

// SetSearch changes the term and resets to page 1.
func (s *Screen[T]) SetSearch(term string) {
	s.term = term
	s.filtered = s.apply(term)
	s.page = 1
}

// SetPage moves to page, clamped to the available pages.
func (s *Screen[T]) SetPage(page int) {
	s.page = ClampPage(page, s.TotalPages())
}

func (s *Screen[T]) Term() string     { return s.term }
func (s *Screen[T]) CurrentPage() int { return s.page }
func (s *Screen[T]) Filtered() []T    { return s.filtered }

// TotalPages counts pages of the filtered list.
func (s *Screen[T]) TotalPages() int {
	return TotalPages(len(s.filtered), s.pageSize)
}

// Page returns the records of the current page with paging metadata.
func (s *Screen[T]) Page() domain.Page[T] {
	records := Paginate(s.filtered, s.page, s.pageSize)
	if records == nil {
		records = []T{}
	}
	return domain.Page[T]{
		Records: records,
		Pagination: domain.Pagination{
			Page:       s.page,
			PageSize:   s.pageSize,
			Total:      len(s.filtered),
			TotalPages: s.TotalPages(),
		},
	}
}
