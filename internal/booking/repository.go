package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrBookingNotFound   = errors.New("booking not found")
)

// Postgres error codes worth distinguishing from plain storage failures.
const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert commits one booking. The unique constraint on
// (venue_id, date, slot_id) is the only concurrency control: when two inserts
// race for the same slot, exactly one succeeds and the other gets
// ErrSlotAlreadyBooked.
func (r *repository) Insert(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	query := `
		INSERT INTO bookings (id, venue_id, slot_id, date, customer_name, customer_email, customer_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, venue_id, slot_id, date, customer_name, customer_email, customer_phone, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query,
		uuid.New().String(),
		req.VenueID,
		req.SlotID,
		req.Date,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) BookingsForDate(ctx context.Context, venueID, date string) ([]Booking, error) {
	query := `
		SELECT id, venue_id, slot_id, date, customer_name, customer_email, customer_phone, created_at
		FROM bookings
		WHERE venue_id = $1 AND date = $2
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, venueID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) BookingsByEmail(ctx context.Context, email string) ([]Booking, error) {
	query := `
		SELECT id, venue_id, slot_id, date, customer_name, customer_email, customer_phone, created_at
		FROM bookings
		WHERE LOWER(customer_email) = LOWER($1)
		ORDER BY created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, email)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Delete hard-deletes a booking and returns the deleted row. A malformed uuid
// can never match a row, so it maps to ErrBookingNotFound too.
func (r *repository) Delete(ctx context.Context, id string) (*Booking, error) {
	query := `
		DELETE FROM bookings
		WHERE id = $1
		RETURNING id, venue_id, slot_id, date, customer_name, customer_email, customer_phone, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgInvalidText {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}
