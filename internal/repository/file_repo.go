package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auditorium/internal/db"
	"auditorium/internal/utils"
)

// FileBookingRepository keeps the whole booking set resident in memory and
// re-syncs it to a JSON file after every mutation. The in-memory copy is
// authoritative: a failed disk write is logged and swallowed, it does not
// fail the enclosing request. With an empty path the store is purely
// in-memory.
type FileBookingRepository struct {
	mu       sync.Mutex
	path     string
	bookings []db.Booking
}

func NewFileBookingRepository(path string) (*FileBookingRepository, error) {
	r := &FileBookingRepository{path: path}
	if path == "" {
		return r, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("error loading form submissions: %w", err)
	}
	if err := json.Unmarshal(data, &r.bookings); err != nil {
		return nil, fmt.Errorf("error parsing form submissions: %w", err)
	}
	return r, nil
}

func (r *FileBookingRepository) Add(ctx context.Context, booking *db.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)
	r.save()
	return nil
}

func (r *FileBookingRepository) RemoveAt(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.bookings) {
		return ErrInvalidIndex
	}
	r.bookings = append(r.bookings[:index], r.bookings[index+1:]...)
	r.save()
	return nil
}

func (r *FileBookingRepository) ListAll(ctx context.Context) ([]db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]db.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *FileBookingRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings), nil
}

// save must be called with the mutex held.
func (r *FileBookingRepository) save() {
	if r.path == "" {
		return
	}
	data, err := json.MarshalIndent(r.bookings, "", "  ")
	if err != nil {
		utils.GetLogger().Sugar().Errorf("Error saving form submissions: %v", err)
		return
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		utils.GetLogger().Sugar().Errorf("Error saving form submissions to %s: %v", r.path, err)
	}
}
