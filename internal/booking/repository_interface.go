package booking

import "context"

type Repository interface {
	Insert(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	BookingsForDate(ctx context.Context, venueID, date string) ([]Booking, error)
	BookingsByEmail(ctx context.Context, email string) ([]Booking, error)
	Delete(ctx context.Context, id string) (*Booking, error)
}
