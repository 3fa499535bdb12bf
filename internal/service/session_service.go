package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"auditorium/internal/db"
	"auditorium/internal/entities"
	"auditorium/internal/repository"
)

// SessionService reads the booking set for display. It never mutates it.
type SessionService struct {
	repo repository.BookingRepository
}

func NewSessionService(repo repository.BookingRepository) *SessionService {
	return &SessionService{repo: repo}
}

// List returns a snapshot of the bookings, sorted by the composite
// (date, start_time) key and then filtered. date_asc/time_asc and
// date_desc/time_desc are the same two orderings.
func (s *SessionService) List(ctx context.Context, sortOption entities.SortOption, search string) ([]db.Booking, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	switch sortOption {
	case entities.SortDateAsc, entities.SortTimeAsc:
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessionKey(sessions[i]).Before(sessionKey(sessions[j]))
		})
	case entities.SortDateDesc, entities.SortTimeDesc:
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessionKey(sessions[j]).Before(sessionKey(sessions[i]))
		})
	}

	if search != "" {
		query := strings.ToLower(search)
		filtered := sessions[:0]
		for _, sess := range sessions {
			if strings.Contains(strings.ToLower(sess.Title), query) ||
				strings.Contains(sess.Date, search) ||
				strings.Contains(sess.StartTime, search) ||
				strings.Contains(sess.EndTime, search) {
				filtered = append(filtered, sess)
			}
		}
		sessions = filtered
	}

	return sessions, nil
}

func sessionKey(b db.Booking) time.Time {
	t, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}
