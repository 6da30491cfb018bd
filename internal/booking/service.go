package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hemantgupta27/Court-booking-application/internal/logger"
	"github.com/Hemantgupta27/Court-booking-application/internal/metrics"
	"github.com/Hemantgupta27/Court-booking-application/internal/slot"
	"github.com/Hemantgupta27/Court-booking-application/internal/venue"
)

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrVenueNotFound = errors.New("venue not found")
	ErrUnknownSlot   = errors.New("slot id does not match any slot for this venue and date")
)

const dateLayout = "2006-01-02"

// Notifier queues customer-facing mail. Email is best-effort: a notifier
// failure never fails the booking operation it decorates.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, venueName, slotLabel string) error
	SendBookingCancellation(ctx context.Context, to, name, venueName, slotLabel string) error
}

type Service interface {
	GetAvailability(ctx context.Context, venueID, date string) ([]slot.Slot, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	ListBookings(ctx context.Context, email string) ([]Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	catalog  *venue.Catalog
	hours    []string
	notifier Notifier
}

func NewService(repo Repository, catalog *venue.Catalog, hours []string, notifier Notifier) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		hours:    hours,
		notifier: notifier,
	}
}

// GetAvailability merges the generated grid with committed bookings: a slot is
// booked iff a booking with a matching slot id exists. An empty store means an
// all-available day, never an error.
func (s *service) GetAvailability(ctx context.Context, venueID, date string) ([]slot.Slot, error) {
	bookings, err := s.repo.BookingsForDate(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.SlotID] = struct{}{}
	}

	slots := slot.Generate(venueID, date, s.hours)
	for i := range slots {
		_, slots[i].IsBooked = booked[slots[i].ID]
	}

	metrics.RecordAvailabilityQuery()
	return slots, nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	v, ok := s.catalog.Get(req.VenueID)
	if !ok {
		return nil, ErrVenueNotFound
	}

	target, ok := s.findSlot(req)
	if !ok {
		return nil, ErrUnknownSlot
	}

	booking, err := s.repo.Insert(ctx, req)
	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			metrics.RecordBooking("conflict")
		} else {
			metrics.RecordBooking("error")
		}
		return nil, err
	}
	metrics.RecordBooking("created")

	s.notify(ctx, func() error {
		return s.notifier.SendBookingConfirmation(ctx,
			booking.CustomerEmail,
			booking.CustomerName,
			v.Name,
			slotLabel(req.Date, target),
		)
	})

	return booking, nil
}

func (s *service) ListBookings(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.BookingsByEmail(ctx, email)
}

func (s *service) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.RecordBookingCancellation()

	venueName := booking.VenueID
	if v, ok := s.catalog.Get(booking.VenueID); ok {
		venueName = v.Name
	}

	label := booking.SlotID
	if target, ok := s.findSlot(CreateBookingRequest{VenueID: booking.VenueID, SlotID: booking.SlotID, Date: booking.Date}); ok {
		label = slotLabel(booking.Date, target)
	}

	s.notify(ctx, func() error {
		return s.notifier.SendBookingCancellation(ctx,
			booking.CustomerEmail,
			booking.CustomerName,
			venueName,
			label,
		)
	})

	return nil
}

// findSlot checks the slot id against the grid the generator would produce
// for this venue and date. Ids never hit storage unless they name a real slot.
func (s *service) findSlot(req CreateBookingRequest) (slot.Slot, bool) {
	for _, candidate := range slot.Generate(req.VenueID, req.Date, s.hours) {
		if candidate.ID == req.SlotID {
			return candidate, true
		}
	}
	return slot.Slot{}, false
}

func (s *service) notify(ctx context.Context, send func() error) {
	if s.notifier == nil {
		return
	}
	if err := send(); err != nil {
		logger.Errorf("Failed to queue notification email: %v", err)
	}
}

func slotLabel(date string, sl slot.Slot) string {
	return fmt.Sprintf("%s %s-%s", date, sl.StartTime, sl.EndTime)
}
