package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"auditorium/internal/repository"
	"auditorium/internal/utils"
)

// JobService runs the scheduled maintenance work: a periodic snapshot of
// the booking set for offline backup.
type JobService struct {
	Repo        repository.BookingRepository
	SnapshotDir string
}

func NewJobService(repo repository.BookingRepository, snapshotDir string) *JobService {
	return &JobService{Repo: repo, SnapshotDir: snapshotDir}
}

// SnapshotBookings writes a timestamped JSON copy of the current booking
// set. Failures are logged by the caller and never affect request handling.
func (s *JobService) SnapshotBookings(ctx context.Context) error {
	log := utils.GetLogger().Sugar()
	log.Info("Cron Job: snapshotting booking set...")

	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to list bookings: %w", err)
	}

	if err := os.MkdirAll(s.SnapshotDir, 0o755); err != nil {
		return fmt.Errorf("cron job: failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("cron job: failed to marshal bookings: %w", err)
	}

	name := filepath.Join(s.SnapshotDir, fmt.Sprintf("bookings-%s.json", time.Now().UTC().Format("20060102-150405")))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("cron job: failed to write snapshot %s: %w", name, err)
	}

	log.Infof("Cron Job: wrote snapshot of %d bookings to %s", len(bookings), name)
	return nil
}
