package repository

import (
	"context"
	"errors"

	"auditorium/internal/db"
)

// ErrInvalidIndex is returned when a removal addresses a position outside
// the current listing.
var ErrInvalidIndex = errors.New("invalid submission index")

// BookingRepository owns the persisted booking set. Removal is positional:
// the index addresses the ordering returned by ListAll at call time.
type BookingRepository interface {
	Add(ctx context.Context, booking *db.Booking) error
	RemoveAt(ctx context.Context, index int) error
	ListAll(ctx context.Context) ([]db.Booking, error)
	Count(ctx context.Context) (int, error)
}
