// Package client is the Go consumer of the booking API: a thin HTTP client
// speaking the uniform response envelope, plus the multi-slot submission
// orchestrator.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hemantgupta27/Court-booking-application/internal/booking"
	"github.com/Hemantgupta27/Court-booking-application/internal/slot"
	"github.com/Hemantgupta27/Court-booking-application/internal/venue"
)

var (
	ErrSlotConflict = errors.New("slot already booked")
	ErrNotFound     = errors.New("not found")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client against baseURL, e.g. "http://localhost:8080".
// A nil httpClient gets a sane default with a timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) GetVenues(ctx context.Context) ([]venue.Venue, error) {
	var venues []venue.Venue
	if err := c.get(ctx, "/api/venues", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) GetSlots(ctx context.Context, venueID, date string) ([]slot.Slot, error) {
	query := url.Values{"venueId": {venueID}, "date": {date}}
	var slots []slot.Slot
	if err := c.get(ctx, "/api/slots", query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) MyBookings(ctx context.Context, email string) ([]booking.Booking, error) {
	query := url.Values{"email": {email}}
	var bookings []booking.Booking
	if err := c.get(ctx, "/api/my-bookings", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves one slot. A taken slot comes back as ErrSlotConflict,
// which callers treat as an expected outcome of contention.
func (c *Client) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.Booking, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		if resp.StatusCode == http.StatusConflict {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("create booking failed: %s", envError(env, resp))
	}

	var created booking.Booking
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/bookings/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return err
	}
	if !env.Success {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("cancel booking failed: %s", envError(env, resp))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("request %s failed: %s", path, envError(env, resp))
	}

	return json.Unmarshal(env.Data, out)
}

func decodeEnvelope(resp *http.Response) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("bad response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}

func envError(env *envelope, resp *http.Response) string {
	if env.Error != "" {
		return env.Error
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
