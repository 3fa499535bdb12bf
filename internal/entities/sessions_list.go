package entities

import "auditorium/internal/db"

// SortOption names the orderings accepted by the sessions listing.
type SortOption string

const (
	SortNone     SortOption = ""
	SortDateAsc  SortOption = "date_asc"
	SortDateDesc SortOption = "date_desc"
	SortTimeAsc  SortOption = "time_asc"
	SortTimeDesc SortOption = "time_desc"
)

type SessionsList struct {
	Total    int          `json:"total"`
	Sessions []db.Booking `json:"sessions"`
}
