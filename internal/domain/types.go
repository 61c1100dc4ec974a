package domain

// Status represents a lightweight state value.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusFinished  Status = "finished"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one slice of a larger list plus its paging metadata.
type Page[T any] struct {
	Records []T `json:"records"`
	Pagination
}
