// Package provider fetches booking records from the external booking
// system.  The booking system is the only remote dependency of the
// chatbot and is treated as unreliable: callers absorb every error from a
// BookingSource as "no historical data" and keep answering.
package provider

import (
	"context"
	"errors"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// BookingSource supplies confirmed bookings for a room category.  An
// empty slice and a nil error both mean "no bookings"; a non-nil error
// means the source could not be consulted at all.
type BookingSource interface {
	GetBookingsByCategory(ctx context.Context, category model.RoomCategory) ([]model.BookingRecord, error)
}

// ErrUpstream is returned when the booking service answers with an error
// payload instead of booking data.
var ErrUpstream = errors.New("booking service returned an error response")
