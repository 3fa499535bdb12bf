package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"auditorium/internal/db"
	"auditorium/internal/entities"
	"auditorium/internal/repository"
	"auditorium/internal/utils"
)

var (
	// ErrInvalidFormat is returned when the date or times do not match the
	// expected YYYY-MM-DD / HH:MM shapes, or do not parse.
	ErrInvalidFormat = errors.New("invalid date or time format")
	// ErrInThePast is returned when the requested slot has already elapsed.
	ErrInThePast = errors.New("please select a time and date in the present or near future")
	// ErrSlotTaken is returned when the requested slot overlaps an accepted
	// booking on the same date.
	ErrSlotTaken = errors.New("the requested slot is already booked")
	// ErrMissingFields is returned when a required field is absent.
	ErrMissingFields = errors.New("missing required fields")
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const emailSubject = "Auditorium Booking Confirmation - JSS International School"

// Notifier dispatches the confirmation message for an accepted booking.
type Notifier interface {
	SendBookingConfirmation(toEmail, toName, subject, body string) error
}

// BookingService accepts or rejects candidate bookings. Submit and
// RemoveAt are serialized behind a mutex so the overlap check and the
// insert are atomic with respect to concurrent requests.
type BookingService struct {
	mu       sync.Mutex
	repo     repository.BookingRepository
	notifier Notifier
	validate *validator.Validate
	loc      *time.Location
}

func NewBookingService(repo repository.BookingRepository, notifier Notifier, loc *time.Location) *BookingService {
	return &BookingService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
		loc:      loc,
	}
}

// SchoolLocation resolves the timezone used to anchor date+time
// comparisons, falling back to fixed GST when tzdata is unavailable.
func SchoolLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		utils.GetLogger().Sugar().Warnf("Could not load timezone %q, falling back to GST: %v", name, err)
		loc = time.FixedZone("GST", 4*60*60)
	}
	return loc
}

// Submit validates a candidate booking, checks it against all accepted
// bookings for overlap and either persists it (triggering the
// confirmation email) or rejects it.
func (s *BookingService) Submit(ctx context.Context, req entities.BookingRequest) (*db.Booking, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	if !dateRegex.MatchString(req.Date) || !timeRegex.MatchString(req.StartTime) || !timeRegex.MatchString(req.EndTime) {
		return nil, ErrInvalidFormat
	}

	startInstant, err := time.ParseInLocation("2006-01-02T15:04", req.Date+"T"+req.StartTime, s.loc)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	endInstant, err := time.ParseInLocation("2006-01-02T15:04", req.Date+"T"+req.EndTime, s.loc)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	now := time.Now().In(s.loc)
	if startInstant.Before(now) || endInstant.Before(now) {
		return nil, ErrInThePast
	}

	// An end before the start is deliberately not rejected; it yields a
	// zero or negative duration.
	duration := int(endInstant.Sub(startInstant).Minutes())

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for overlap check: %w", err)
	}
	for _, b := range existing {
		if overlaps(startInstant, endInstant, b, s.loc) {
			return nil, ErrSlotTaken
		}
	}

	booking := &db.Booking{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Class:       req.Class,
		Section:     req.Section,
		Description: req.Description,
		Email:       req.Email,
		Duration:    duration,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, booking); err != nil {
		return nil, fmt.Errorf("error persisting booking: %w", err)
	}

	body := confirmationBody(entities.BookingEmailData{
		Name:        booking.Name,
		Title:       booking.Title,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Date:        booking.Date,
		Class:       booking.Class,
		Section:     booking.Section,
		Description: booking.Description,
		Duration:    booking.Duration,
	})
	go func(toEmail, toName, body string) {
		if err := s.notifier.SendBookingConfirmation(toEmail, toName, emailSubject, body); err != nil {
			utils.GetLogger().Sugar().Errorf("Booking %s accepted but confirmation email to %s failed: %v", booking.ID, toEmail, err)
		}
	}(booking.Email, booking.Name, body)

	return booking, nil
}

// RemoveAt deletes the booking at the given position of the current
// listing order. Out-of-range positions leave the set unchanged.
func (s *BookingService) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.RemoveAt(ctx, index)
}

// ListAll returns the raw booking set in its persisted order.
func (s *BookingService) ListAll(ctx context.Context) ([]db.Booking, error) {
	return s.repo.ListAll(ctx)
}

func confirmationBody(data entities.BookingEmailData) string {
	return fmt.Sprintf(
		"Welcome, %s. \nBelow are the details of the auditorium session you booked:\n\n"+
			"Event: %s\nStart Time: %s\nEnd Time: %s\nDate: %s\nClass: %s\nSection: %s\nDescription: %s\nDuration: %d minutes",
		data.Name, data.Title, data.StartTime, data.EndTime,
		data.Date, data.Class, data.Section, data.Description, data.Duration,
	)
}

// overlaps reports whether [start, end) conflicts with the stored
// booking's slot. Adjacency (end == booked start) is not a conflict,
// and a stored record that no longer parses cannot conflict.
func overlaps(start, end time.Time, b db.Booking, loc *time.Location) bool {
	bookedStart, err := time.ParseInLocation("2006-01-02T15:04", b.Date+"T"+b.StartTime, loc)
	if err != nil {
		return false
	}
	bookedEnd, err := time.ParseInLocation("2006-01-02T15:04", b.Date+"T"+b.EndTime, loc)
	if err != nil {
		return false
	}

	return (!start.Before(bookedStart) && start.Before(bookedEnd)) || // bookedStart <= start < bookedEnd
		(end.After(bookedStart) && !end.After(bookedEnd)) || // bookedStart < end <= bookedEnd
		(!start.After(bookedStart) && !end.Before(bookedEnd)) // start <= bookedStart && end >= bookedEnd
}
