package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// CheckAvailability reports whether quantity rooms of the category can be
// accommodated over [checkIn, checkOut).  Rooms already reserved by
// overlapping bookings count against the category inventory.
func (e *Engine) CheckAvailability(ctx context.Context, category model.RoomCategory, checkIn, checkOut time.Time, quantity int) (bool, error) {
	if !category.Valid() {
		return false, fmt.Errorf("unknown room category %q", category)
	}
	if quantity < 1 {
		return false, fmt.Errorf("invalid room quantity %d", quantity)
	}

	bookings := e.fetchBookings(ctx, category)

	booked := map[model.RoomCategory]int{}
	for _, b := range bookings {
		if !b.Overlaps(checkIn, checkOut) {
			continue
		}
		for cat, count := range b.Rooms {
			booked[cat] += count
		}
	}

	return quantity+booked[category] <= model.TotalRooms(category), nil
}

// Occupancy computes how much of the category inventory is reserved over
// the requested window.  The occupied count is clamped to the inventory
// so the ratio never exceeds one, even when overlapping bookings
// nominally oversell the category.
func (e *Engine) Occupancy(ctx context.Context, category model.RoomCategory, checkIn, checkOut time.Time) (model.OccupancySnapshot, error) {
	if !category.Valid() {
		return model.OccupancySnapshot{}, fmt.Errorf("unknown room category %q", category)
	}

	total := model.TotalRooms(category)
	occupied := 0
	for _, b := range e.fetchBookings(ctx, category) {
		if !b.Overlaps(checkIn, checkOut) {
			continue
		}
		occupied += b.Rooms[category]
	}
	if occupied > total {
		occupied = total
	}

	return model.OccupancySnapshot{
		Occupied: occupied,
		Total:    total,
		Ratio:    float64(occupied) / float64(total),
	}, nil
}

// Alternatives searches for fallback offers when the primary request is
// unavailable.  Three independent searches run in a fixed order: every
// other category at the same dates (all hits reported), the same category
// shifted forward up to seven days (first hit), and, for multi-room
// requests, progressively smaller quantities (first hit).  Suggestions
// keep that order; when nothing is found a generic hint is returned.
func (e *Engine) Alternatives(ctx context.Context, category model.RoomCategory, checkIn, checkOut time.Time, quantity int) []string {
	var suggestions []string

	for _, other := range model.Categories {
		if other == category {
			continue
		}
		if ok, err := e.CheckAvailability(ctx, other, checkIn, checkOut, quantity); err == nil && ok {
			suggestions = append(suggestions, fmt.Sprintf("• %s rooms are available", other))
		}
	}

	for i := 1; i <= 7; i++ {
		altIn := checkIn.AddDate(0, 0, i)
		altOut := checkOut.AddDate(0, 0, i)
		if ok, err := e.CheckAvailability(ctx, category, altIn, altOut, quantity); err == nil && ok {
			suggestions = append(suggestions, fmt.Sprintf("• %s available from %s to %s",
				category, altIn.Format("Jan 02"), altOut.Format("Jan 02")))
			break
		}
	}

	if quantity > 1 {
		for q := quantity - 1; q >= 1; q-- {
			if ok, err := e.CheckAvailability(ctx, category, checkIn, checkOut, q); err == nil && ok {
				noun := "room"
				if q > 1 {
					noun = "rooms"
				}
				suggestions = append(suggestions, fmt.Sprintf("• %d %s %s available", q, category, noun))
				break
			}
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "• Try different dates or contact reception for more options")
	}
	return suggestions
}
