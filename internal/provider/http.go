package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// apiEnvelope mirrors the booking service response wrapper.  Data is only
// meaningful when Status is not "error".
type apiEnvelope struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Data    []model.BookingRecord `json:"data"`
}

// Client talks to the booking service REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL.  A zero timeout
// falls back to five seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GetBookingsByCategory fetches all bookings that include the given room
// category.  Transport failures, non-2xx statuses and error envelopes all
// surface as errors; the caller decides how to degrade.
func (c *Client) GetBookingsByCategory(ctx context.Context, category model.RoomCategory) ([]model.BookingRecord, error) {
	url := fmt.Sprintf("%s/api/booking/roomType/%s", c.baseURL, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build booking request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call booking service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("booking service status %d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}
	if envelope.Status == "error" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, envelope.Message)
	}
	return envelope.Data, nil
}
