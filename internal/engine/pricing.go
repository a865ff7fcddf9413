// Package engine implements the pricing and availability models behind
// the chatbot's answers.  Both models are driven by historical booking
// data from the booking system; when that data is missing or the fetch
// fails they degrade to the fixed reference tables instead of erroring.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
	"github.com/iliyamo/hotel-booking-chatbot/internal/provider"
	"github.com/iliyamo/hotel-booking-chatbot/internal/utils"
)

// Engine computes predicted rates and availability for guest inquiries.
// It holds no state beyond its collaborators and is safe for concurrent
// use.
type Engine struct {
	src provider.BookingSource
	log *utils.Logger
}

// New builds an Engine on top of a booking source.
func New(src provider.BookingSource, log *utils.Logger) *Engine {
	if log == nil {
		log = utils.NewLogger()
	}
	return &Engine{src: src, log: log}
}

// fetchBookings loads historical bookings for a category.  Provider
// failures are logged and reduce to an empty result; pricing and
// availability never hard-fail on the booking system.
func (e *Engine) fetchBookings(ctx context.Context, category model.RoomCategory) []model.BookingRecord {
	bookings, err := e.src.GetBookingsByCategory(ctx, category)
	if err != nil {
		e.log.Warn("booking fetch for %s failed, continuing without history: %v", category, err)
		return nil
	}
	return bookings
}

// PredictRate computes the predicted nightly rate for one room of the
// given category.  The category base rate is replaced by the historical
// per-room-per-night average when one exists, then scaled by demand,
// season, residency and weekend multipliers.
func (e *Engine) PredictRate(ctx context.Context, category model.RoomCategory, checkIn time.Time, resident bool) (float64, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("unknown room category %q", category)
	}

	rate := model.BaseRate(category)
	bookings := e.fetchBookings(ctx, category)

	if avg := historicalAverage(bookings, category); avg > 0 {
		rate = avg
	}

	rate *= e.demandMultiplier(category, checkIn, bookings)
	rate *= SeasonalMultiplier(checkIn)
	if resident {
		rate *= 0.80
	}
	if wd := checkIn.Weekday(); wd == time.Friday || wd == time.Saturday {
		rate *= 1.05
	}
	return rate, nil
}

// historicalAverage derives a per-room-per-night price from past
// bookings of the category.  Records with non-positive totals, nights or
// room counts are excluded; zero is returned when nothing usable remains.
func historicalAverage(bookings []model.BookingRecord, category model.RoomCategory) float64 {
	var sum float64
	var n int
	for _, b := range bookings {
		if b.TotalPrice <= 0 {
			continue
		}
		count := b.Rooms[category]
		nights := b.Nights()
		if nights <= 0 || count <= 0 {
			continue
		}
		sum += b.TotalPrice / float64(nights*count)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// demandMultiplier buckets short-term occupancy around the check-in date
// into a price adjustment.  Occupancy is the number of rooms of the
// category booked with a check-in inside a ±7 day window, spread over the
// category inventory for those 14 days.  With no usable history the
// window is assumed to hold a single nearby booking.
func (e *Engine) demandMultiplier(category model.RoomCategory, checkIn time.Time, bookings []model.BookingRecord) float64 {
	windowStart := checkIn.AddDate(0, 0, -7)
	windowEnd := checkIn.AddDate(0, 0, 7)

	nearby := 1
	if len(bookings) > nearby {
		nearby = 0
		for _, b := range bookings {
			if b.CheckIn.Before(windowStart) || b.CheckIn.After(windowEnd) {
				continue
			}
			nearby += b.Rooms[category]
		}
	}

	totalRooms := model.TotalRooms(category)
	occupancy := float64(nearby) / float64(totalRooms*14)
	return DemandMultiplier(occupancy)
}

// DemandMultiplier maps an occupancy ratio onto the demand price buckets.
// The function is a non-decreasing step function of the ratio.
func DemandMultiplier(occupancy float64) float64 {
	switch {
	case occupancy > 0.8:
		return 1.30
	case occupancy > 0.6:
		return 1.15
	case occupancy > 0.4:
		return 1.00
	default:
		return 0.90
	}
}

// SeasonalMultiplier adjusts the rate for the time of year of the
// check-in date.  December holidays and the Jan-Mar peak season raise
// prices, the May-June rainy season lowers them.
func SeasonalMultiplier(date time.Time) float64 {
	switch date.Month() {
	case time.December:
		return 1.25
	case time.January, time.February, time.March:
		return 1.20
	case time.August:
		return 1.15
	case time.May, time.June:
		return 0.90
	default:
		return 1.00
	}
}
