package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hemantgupta27/Court-booking-application/internal/api"
	"github.com/Hemantgupta27/Court-booking-application/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Slot availability
// @Description  Returns the full hourly slot grid for a venue and date with booked flags.
// @Tags         slots
// @Produce      json
// @Param        venueId query string true "Venue ID"
// @Param        date    query string true "Date (YYYY-MM-DD)"
// @Success      200 {object} api.Response{data=[]slot.Slot}
// @Failure      400 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/slots [get]
func (h *Handler) GetSlots(c *gin.Context) {
	venueID := c.Query("venueId")
	date := c.Query("date")
	if venueID == "" || date == "" {
		c.JSON(http.StatusBadRequest, api.Err("Missing venueId or date"))
		return
	}

	slots, err := h.service.GetAvailability(c.Request.Context(), venueID, date)
	if err != nil {
		logger.Errorf("Failed to fetch availability for %s on %s: %v", venueID, date, err)
		c.JSON(http.StatusInternalServerError, api.Err("Failed to fetch slots"))
		return
	}

	c.JSON(http.StatusOK, api.OK(slots))
}

// @Summary      Create booking
// @Description  Reserves one slot. A taken slot is a business rejection, not a server fault.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} api.Response{data=booking.Booking}
// @Failure      400 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation failed",
			"details": api.FormatBindingError(err),
		})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, api.Err("slot already booked"))
		case errors.Is(err, ErrVenueNotFound):
			c.JSON(http.StatusBadRequest, api.Err("venue not found"))
		case errors.Is(err, ErrUnknownSlot):
			c.JSON(http.StatusBadRequest, api.Err("unknown slot for this venue and date"))
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.Err("invalid date, expected YYYY-MM-DD"))
		default:
			logger.Errorf("Failed to create booking for slot %s: %v", req.SlotID, err)
			c.JSON(http.StatusInternalServerError, api.Err("Failed to create booking"))
		}
		return
	}

	c.JSON(http.StatusCreated, api.OK(booking))
}

// @Summary      List bookings by email
// @Description  Case-insensitive exact email match. Ordering is newest-first.
// @Tags         bookings
// @Produce      json
// @Param        email query string true "Customer email"
// @Success      200 {object} api.Response{data=[]booking.Booking}
// @Failure      400 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/my-bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, api.Err("Email is required"))
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), email)
	if err != nil {
		logger.Errorf("Failed to fetch bookings for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, api.Err("Failed to fetch bookings"))
		return
	}

	if bookings == nil {
		bookings = []Booking{}
	}
	c.JSON(http.StatusOK, api.OK(bookings))
}

// @Summary      Cancel booking
// @Description  Hard-deletes a booking; cancelling twice yields 404.
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/bookings/{id} [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.Err("not found"))
			return
		}
		logger.Errorf("Failed to cancel booking %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.Err("Failed to cancel booking"))
		return
	}

	c.JSON(http.StatusOK, api.OK(nil))
}
