package booking

import "time"

// Booking occupies exactly one slot identity (venueId, date, slotId). The
// bookings table enforces that uniqueness at write time, so two concurrent
// reservations for the same slot can never both commit.
type Booking struct {
	ID            string    `db:"id" json:"id"`
	VenueID       string    `db:"venue_id" json:"venueId"`
	SlotID        string    `db:"slot_id" json:"slotId"`
	Date          string    `db:"date" json:"date"`
	CustomerName  string    `db:"customer_name" json:"customerName"`
	CustomerEmail string    `db:"customer_email" json:"customerEmail"`
	CustomerPhone string    `db:"customer_phone" json:"customerPhone"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type CreateBookingRequest struct {
	VenueID       string `json:"venueId" binding:"required"`
	SlotID        string `json:"slotId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
}
