package repository

import (
	"context"
	"database/sql"
	"fmt"

	"auditorium/internal/db"
)

// PostgresBookingRepository stores bookings in a `bookings` table. The
// listing order (and therefore the positional removal order) is the
// insertion order, i.e. ascending serial id.
type PostgresBookingRepository struct {
	DB *sql.DB
}

func NewPostgresBookingRepository(database *sql.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{DB: database}
}

func (r *PostgresBookingRepository) Add(ctx context.Context, booking *db.Booking) error {
	query := `
		INSERT INTO bookings
		(code, name, title, date, start_time, end_time, class, section, description, email, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		booking.ID,
		booking.Name,
		booking.Title,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Class,
		booking.Section,
		booking.Description,
		booking.Email,
		booking.Duration,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepository) RemoveAt(ctx context.Context, index int) error {
	if index < 0 {
		return ErrInvalidIndex
	}
	query := `
		DELETE FROM bookings
		WHERE id = (SELECT id FROM bookings ORDER BY id OFFSET $1 LIMIT 1)`
	result, err := r.DB.ExecContext(ctx, query, index)
	if err != nil {
		return fmt.Errorf("error deleting booking at index %d: %w", index, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrInvalidIndex
	}
	return nil
}

func (r *PostgresBookingRepository) ListAll(ctx context.Context) ([]db.Booking, error) {
	query := `
		SELECT code, name, title, date, start_time, end_time, class, section, description, email, duration, created_at
		FROM bookings ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Title, &b.Date, &b.StartTime, &b.EndTime,
			&b.Class, &b.Section, &b.Description, &b.Email, &b.Duration, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *PostgresBookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return count, nil
}
