package client

import (
	"context"
	"errors"

	"github.com/Hemantgupta27/Court-booking-application/internal/booking"
	"github.com/Hemantgupta27/Court-booking-application/internal/slot"
)

type Customer struct {
	Name  string
	Email string
	Phone string
}

// SlotFailure records one slot that could not be reserved and why.
type SlotFailure struct {
	SlotID string
	Reason string
}

// SubmitResult is the per-slot accounting of a range submission. The caller
// always learns Succeeded out of Requested; partial bookings stand and are
// never rolled back.
type SubmitResult struct {
	Requested int
	Succeeded int
	Bookings  []booking.Booking
	Failures  []SlotFailure
}

func (r SubmitResult) FullSuccess() bool {
	return r.Requested > 0 && r.Succeeded == r.Requested
}

// SubmitRange books every slot of a selected range, one createBooking call per
// slot, strictly sequentially: a single outstanding request at a time bounds
// server load and makes the winner deterministic when adjacent slots are
// contended. There is no transaction across slots: a conflict or transport
// error on one slot is recorded and the remaining slots are still attempted.
func (c *Client) SubmitRange(ctx context.Context, venueID, date string, slots []slot.Slot, customer Customer) (SubmitResult, error) {
	if len(slots) == 0 {
		return SubmitResult{}, errors.New("empty selection")
	}

	result := SubmitResult{Requested: len(slots)}
	for _, s := range slots {
		created, err := c.CreateBooking(ctx, booking.CreateBookingRequest{
			VenueID:       venueID,
			SlotID:        s.ID,
			Date:          date,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
		})
		if err != nil {
			result.Failures = append(result.Failures, SlotFailure{SlotID: s.ID, Reason: err.Error()})
			continue
		}
		result.Succeeded++
		result.Bookings = append(result.Bookings, *created)
	}

	return result, nil
}
