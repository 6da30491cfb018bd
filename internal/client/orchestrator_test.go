package client

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemantgupta27/Court-booking-application/internal/booking"
	"github.com/Hemantgupta27/Court-booking-application/internal/selection"
	"github.com/Hemantgupta27/Court-booking-application/internal/venue"
)

// memoryRepo backs the real service with an in-memory store enforcing the
// same per-slot uniqueness the bookings table does.
type memoryRepo struct {
	mu       sync.Mutex
	bySlot   map[string]booking.Booking
	inserted []string // slot ids in arrival order
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{bySlot: map[string]booking.Booking{}}
}

func (r *memoryRepo) key(venueID, date, slotID string) string {
	return venueID + "|" + date + "|" + slotID
}

func (r *memoryRepo) Insert(ctx context.Context, req booking.CreateBookingRequest) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := r.key(req.VenueID, req.Date, req.SlotID)
	if _, taken := r.bySlot[k]; taken {
		return nil, booking.ErrSlotAlreadyBooked
	}

	b := booking.Booking{
		ID:            uuid.New().String(),
		VenueID:       req.VenueID,
		SlotID:        req.SlotID,
		Date:          req.Date,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CreatedAt:     time.Now(),
	}
	r.bySlot[k] = b
	r.inserted = append(r.inserted, req.SlotID)
	return &b, nil
}

func (r *memoryRepo) BookingsForDate(ctx context.Context, venueID, date string) ([]booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []booking.Booking
	for _, b := range r.bySlot {
		if b.VenueID == venueID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) BookingsByEmail(ctx context.Context, email string) ([]booking.Booking, error) {
	return nil, fmt.Errorf("not used in this test")
}

func (r *memoryRepo) Delete(ctx context.Context, id string) (*booking.Booking, error) {
	return nil, booking.ErrBookingNotFound
}

var testHours = []string{"09:00", "10:00", "11:00", "12:00", "13:00"}

func startAPI(t *testing.T, repo booking.Repository) *Client {
	t.Helper()

	catalog := venue.NewCatalog([]venue.Venue{{ID: "c1", Name: "Football Turf"}})
	svc := booking.NewService(repo, catalog, testHours, nil)
	handler := booking.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/slots", handler.GetSlots)
	router.POST("/api/bookings", handler.CreateBooking)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(srv.URL, srv.Client())
}

func customer() Customer {
	return Customer{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210"}
}

func TestSubmitRangeFullSuccess(t *testing.T) {
	repo := newMemoryRepo()
	c := startAPI(t, repo)
	ctx := context.Background()

	grid, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, grid, 4)

	sel := selection.New().Click(grid, grid[0]).Selection.Click(grid, grid[2]).Selection
	require.Equal(t, selection.RangeSelected, sel.State)

	result, err := c.SubmitRange(ctx, "c1", "2025-06-01", sel.Slots, customer())
	require.NoError(t, err)

	assert.True(t, result.FullSuccess())
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 3, result.Succeeded)
	assert.Empty(t, result.Failures)

	// Refreshed availability shows all three committed.
	after, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, after[i].IsBooked)
	}
	assert.False(t, after[3].IsBooked)
}

func TestSubmitRangePartialSuccessIsReportedNotRolledBack(t *testing.T) {
	repo := newMemoryRepo()
	c := startAPI(t, repo)
	ctx := context.Background()

	grid, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)

	// A 3-slot range is selected, then another actor grabs the middle slot
	// before submission.
	sel := selection.New().Click(grid, grid[0]).Selection.Click(grid, grid[2]).Selection
	require.Equal(t, selection.RangeSelected, sel.State)

	_, err = repo.Insert(ctx, booking.CreateBookingRequest{
		VenueID:       "c1",
		SlotID:        grid[1].ID,
		Date:          "2025-06-01",
		CustomerName:  "Rival",
		CustomerEmail: "rival@example.com",
		CustomerPhone: "123",
	})
	require.NoError(t, err)

	result, err := c.SubmitRange(ctx, "c1", "2025-06-01", sel.Slots, customer())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, grid[1].ID, result.Failures[0].SlotID)
	assert.Contains(t, result.Failures[0].Reason, "slot already booked")

	// All three slots end up booked: two by this customer, one by the rival.
	after, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)
	assert.True(t, after[0].IsBooked)
	assert.True(t, after[1].IsBooked)
	assert.True(t, after[2].IsBooked)
}

func TestSubmitRangeIsSequentialInGridOrder(t *testing.T) {
	repo := newMemoryRepo()
	c := startAPI(t, repo)
	ctx := context.Background()

	grid, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)

	sel := selection.New().Click(grid, grid[3]).Selection.Click(grid, grid[0]).Selection
	require.Equal(t, selection.RangeSelected, sel.State)

	_, err = c.SubmitRange(ctx, "c1", "2025-06-01", sel.Slots, customer())
	require.NoError(t, err)

	expected := []string{grid[0].ID, grid[1].ID, grid[2].ID, grid[3].ID}
	assert.Equal(t, expected, repo.inserted, "one call per slot, earlier slots first")
}

func TestSubmitRangeEmptySelection(t *testing.T) {
	c := startAPI(t, newMemoryRepo())

	_, err := c.SubmitRange(context.Background(), "c1", "2025-06-01", nil, customer())

	assert.Error(t, err)
}

func TestSubmitRangeTotalFailure(t *testing.T) {
	repo := newMemoryRepo()
	c := startAPI(t, repo)
	ctx := context.Background()

	grid, err := c.GetSlots(ctx, "c1", "2025-06-01")
	require.NoError(t, err)

	for _, s := range grid[:2] {
		_, err := repo.Insert(ctx, booking.CreateBookingRequest{
			VenueID: "c1", SlotID: s.ID, Date: "2025-06-01",
			CustomerName: "Rival", CustomerEmail: "rival@example.com", CustomerPhone: "123",
		})
		require.NoError(t, err)
	}

	result, err := c.SubmitRange(ctx, "c1", "2025-06-01", grid[:2], customer())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 0, result.Succeeded)
	assert.False(t, result.FullSuccess())
	assert.Len(t, result.Failures, 2)
}
