// Package repository reads booking records straight from the booking
// system's database.  It is the alternative to the REST client in
// internal/provider for deployments where the chatbot can reach the
// booking database directly (BOOKING_SOURCE=mysql).
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// BookingRepo provides read-only access to confirmed bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo and panics if the database
// handle is nil.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	if db == nil {
		panic("nil db passed to NewBookingRepo")
	}
	return &BookingRepo{db: db}
}

// GetBookingsByCategory returns every booking that reserves at least one
// room of the given category, with the full per-category room breakdown
// attached.  The result is assembled in memory because a booking spans
// several booking_rooms rows.
func (r *BookingRepo) GetBookingsByCategory(ctx context.Context, category model.RoomCategory) ([]model.BookingRecord, error) {
	const q = `SELECT b.id, b.check_in_date, b.check_out_date, b.total_price, br.room_type, br.room_count
		FROM bookings b
		JOIN booking_rooms br ON br.booking_id = b.id
		WHERE b.id IN (SELECT booking_id FROM booking_rooms WHERE room_type = ?)
		ORDER BY b.id`

	rows, err := r.db.QueryContext(ctx, q, string(category))
	if err != nil {
		return nil, fmt.Errorf("query bookings for %s: %w", category, err)
	}
	defer rows.Close()

	byID := map[int64]*model.BookingRecord{}
	var order []int64
	for rows.Next() {
		var (
			rec      model.BookingRecord
			roomType string
			count    int
		)
		if err := rows.Scan(&rec.ID, &rec.CheckIn, &rec.CheckOut, &rec.TotalPrice, &roomType, &count); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		existing, ok := byID[rec.ID]
		if !ok {
			rec.Rooms = map[model.RoomCategory]int{}
			byID[rec.ID] = &rec
			order = append(order, rec.ID)
			existing = &rec
		}
		existing.Rooms[model.RoomCategory(roomType)] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read booking rows: %w", err)
	}

	out := make([]model.BookingRecord, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}
