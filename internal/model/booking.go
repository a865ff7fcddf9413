package model

import "time"

// BookingRecord is one confirmed reservation fetched from the booking
// system.  Records are immutable once fetched and live only for the
// duration of a single inquiry; nothing here is persisted locally.
//
// Fields:
//  ID         – booking identifier in the remote system (may be zero).
//  CheckIn    – first night of the stay.
//  CheckOut   – day of departure (exclusive).
//  Rooms      – reserved room count per category; counts are positive
//               and categories unique within a record.
//  TotalPrice – total amount paid for the whole reservation.
type BookingRecord struct {
	ID         int64                `json:"bookingId"`
	CheckIn    time.Time            `json:"checkInDate"`
	CheckOut   time.Time            `json:"checkOutDate"`
	Rooms      map[RoomCategory]int `json:"roomInfo"`
	TotalPrice float64              `json:"totalPrice"`
}

// Nights returns the length of the stay in whole nights.  A record with
// check-out on or before check-in yields zero or a negative value and is
// excluded from pricing by callers.
func (b BookingRecord) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Overlaps reports whether the booking occupies any night in
// [checkIn, checkOut).  Bookings that end on the requested check-in day
// or start on the requested check-out day do not overlap.
func (b BookingRecord) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckOut.After(checkIn) && b.CheckIn.Before(checkOut)
}

// Intent labels what the guest is asking for.
type Intent string

const (
	IntentPrice        Intent = "price"
	IntentAvailability Intent = "availability"
	IntentRoomInfo     Intent = "room_info"
	IntentBookingHelp  Intent = "booking_help"
	IntentUnknown      Intent = "unknown"
)

// StayRequest is the payload extracted from one free-text question.  It
// is derived per call and never stored.  Missing entities carry their
// documented defaults: Standard category, non-resident, next week for
// one night, one room.
type StayRequest struct {
	Category         RoomCategory
	CategoryDetected bool // false when the category came from the default
	Resident         bool
	CheckIn          time.Time
	CheckOut         time.Time
	Quantity         int
	Intent           Intent
}

// Nights returns the requested stay length, floored to one night.
func (r StayRequest) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n <= 0 {
		n = 1
	}
	return n
}

// OccupancySnapshot reports how much of a category's inventory is
// reserved over a date range.  Ratio is always within [0,1]; Occupied is
// clamped to Total even when overlapping bookings nominally exceed it.
type OccupancySnapshot struct {
	Occupied int
	Total    int
	Ratio    float64
}
