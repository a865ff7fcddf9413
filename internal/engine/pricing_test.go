package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// fakeSource serves canned bookings per category, or a fixed error.
type fakeSource struct {
	data map[model.RoomCategory][]model.BookingRecord
	err  error
}

func (f *fakeSource) GetBookingsByCategory(_ context.Context, c model.RoomCategory) ([]model.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[c], nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// Wednesday in September: neutral seasonal and weekend multipliers.
var neutralCheckIn = day(2026, 9, 9)

func TestSeasonalMultiplier(t *testing.T) {
	tests := []struct {
		month time.Month
		want  float64
	}{
		{time.January, 1.20},
		{time.February, 1.20},
		{time.March, 1.20},
		{time.April, 1.00},
		{time.May, 0.90},
		{time.June, 0.90},
		{time.July, 1.00},
		{time.August, 1.15},
		{time.September, 1.00},
		{time.October, 1.00},
		{time.November, 1.00},
		{time.December, 1.25},
	}
	for _, tt := range tests {
		got := SeasonalMultiplier(day(2026, tt.month, 15))
		if !almostEqual(got, tt.want) {
			t.Errorf("SeasonalMultiplier(%s) = %.2f; want %.2f", tt.month, got, tt.want)
		}
	}
}

func TestDemandMultiplierBuckets(t *testing.T) {
	tests := []struct {
		occupancy float64
		want      float64
	}{
		{0.0, 0.90},
		{0.4, 0.90},
		{0.41, 1.00},
		{0.6, 1.00},
		{0.61, 1.15},
		{0.8, 1.15},
		{0.81, 1.30},
		{1.0, 1.30},
	}
	for _, tt := range tests {
		if got := DemandMultiplier(tt.occupancy); !almostEqual(got, tt.want) {
			t.Errorf("DemandMultiplier(%.2f) = %.2f; want %.2f", tt.occupancy, got, tt.want)
		}
	}
}

func TestDemandMultiplierNonDecreasing(t *testing.T) {
	prev := 0.0
	for r := 0.0; r <= 1.0; r += 0.01 {
		got := DemandMultiplier(r)
		if got < prev {
			t.Fatalf("DemandMultiplier decreased at ratio %.2f: %.2f < %.2f", r, got, prev)
		}
		prev = got
	}
}

func TestHistoricalAverage(t *testing.T) {
	bookings := []model.BookingRecord{
		// 20000 over 2 nights x 2 rooms -> 5000 per room per night.
		{CheckIn: day(2026, 8, 1), CheckOut: day(2026, 8, 3), Rooms: map[model.RoomCategory]int{model.Standard: 2}, TotalPrice: 20000},
		// 9000 over 1 night x 1 room -> 9000 per room per night.
		{CheckIn: day(2026, 8, 5), CheckOut: day(2026, 8, 6), Rooms: map[model.RoomCategory]int{model.Standard: 1}, TotalPrice: 9000},
		// Zero nights: excluded.
		{CheckIn: day(2026, 8, 7), CheckOut: day(2026, 8, 7), Rooms: map[model.RoomCategory]int{model.Standard: 1}, TotalPrice: 5000},
		// No rooms of this category: excluded.
		{CheckIn: day(2026, 8, 8), CheckOut: day(2026, 8, 9), Rooms: map[model.RoomCategory]int{model.Deluxe: 1}, TotalPrice: 5000},
		// Non-positive price: excluded.
		{CheckIn: day(2026, 8, 9), CheckOut: day(2026, 8, 10), Rooms: map[model.RoomCategory]int{model.Standard: 1}, TotalPrice: 0},
	}
	got := historicalAverage(bookings, model.Standard)
	if !almostEqual(got, 7000) {
		t.Errorf("historicalAverage = %.2f; want 7000", got)
	}
}

func TestHistoricalAverageEmpty(t *testing.T) {
	if got := historicalAverage(nil, model.Standard); got != 0 {
		t.Errorf("historicalAverage(nil) = %.2f; want 0", got)
	}
}

func TestPredictRateProviderFailure(t *testing.T) {
	e := New(&fakeSource{err: errors.New("connection refused")}, nil)

	got, err := e.PredictRate(context.Background(), model.Standard, neutralCheckIn, false)
	if err != nil {
		t.Fatalf("PredictRate returned error on provider failure: %v", err)
	}
	// Base 8000 x low-demand 0.90, everything else neutral.
	if !almostEqual(got, 7200) {
		t.Errorf("PredictRate = %.2f; want 7200", got)
	}
}

func TestPredictRateUsesHistoricalAverage(t *testing.T) {
	src := &fakeSource{data: map[model.RoomCategory][]model.BookingRecord{
		model.Deluxe: {
			// 40000 over 2 nights x 2 rooms -> 10000 per room per night.
			{CheckIn: day(2026, 9, 7), CheckOut: day(2026, 9, 9), Rooms: map[model.RoomCategory]int{model.Deluxe: 2}, TotalPrice: 40000},
		},
	}}
	e := New(src, nil)

	got, err := e.PredictRate(context.Background(), model.Deluxe, neutralCheckIn, false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	// A single booking keeps the demand window at the low bucket.
	if !almostEqual(got, 10000*0.90) {
		t.Errorf("PredictRate = %.2f; want %.2f", got, 10000*0.90)
	}
}

func TestPredictRateHighDemand(t *testing.T) {
	// Suite inventory is 5, so the 14-day window holds 70 room-days;
	// 60 nearby booked rooms pushes occupancy past 0.8.
	src := &fakeSource{data: map[model.RoomCategory][]model.BookingRecord{
		model.Suite: {
			{CheckIn: day(2026, 9, 8), CheckOut: day(2026, 9, 10), Rooms: map[model.RoomCategory]int{model.Suite: 30}},
			{CheckIn: day(2026, 9, 11), CheckOut: day(2026, 9, 13), Rooms: map[model.RoomCategory]int{model.Suite: 30}},
		},
	}}
	e := New(src, nil)

	got, err := e.PredictRate(context.Background(), model.Suite, neutralCheckIn, false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	// Zero-price records are excluded from the average, so the base rate
	// of 18000 survives and only the 1.30 demand bucket applies.
	if !almostEqual(got, 18000*1.30) {
		t.Errorf("PredictRate = %.2f; want %.2f", got, 18000*1.30)
	}
}

func TestPredictRateResidentDiscount(t *testing.T) {
	e := New(&fakeSource{}, nil)

	visitor, err := e.PredictRate(context.Background(), model.Family, neutralCheckIn, false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	resident, err := e.PredictRate(context.Background(), model.Family, neutralCheckIn, true)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	if !almostEqual(resident, visitor*0.80) {
		t.Errorf("resident rate %.2f; want %.2f (20%% off %.2f)", resident, visitor*0.80, visitor)
	}
}

func TestPredictRateWeekendUplift(t *testing.T) {
	e := New(&fakeSource{}, nil)

	friday := day(2026, 9, 4)
	weekday := day(2026, 9, 9)

	fri, err := e.PredictRate(context.Background(), model.Standard, friday, false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	wed, err := e.PredictRate(context.Background(), model.Standard, weekday, false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	if !almostEqual(fri, wed*1.05) {
		t.Errorf("friday rate %.2f; want %.2f", fri, wed*1.05)
	}
}

func TestPredictRateSeasonalDecember(t *testing.T) {
	e := New(&fakeSource{}, nil)

	// Wednesday, 23 December 2026.
	got, err := e.PredictRate(context.Background(), model.Standard, day(2026, 12, 23), false)
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	if !almostEqual(got, 8000*0.90*1.25) {
		t.Errorf("PredictRate = %.2f; want %.2f", got, 8000*0.90*1.25)
	}
}

func TestPredictRateUnknownCategory(t *testing.T) {
	e := New(&fakeSource{}, nil)
	if _, err := e.PredictRate(context.Background(), model.RoomCategory("Penthouse"), neutralCheckIn, false); err == nil {
		t.Error("expected error for unknown category")
	}
}
