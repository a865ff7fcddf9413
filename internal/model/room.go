package model

// RoomCategory identifies one of the hotel's fixed accommodation tiers.
// The set is closed; free-text detection maps guest wording onto one of
// these values or reports no match.
type RoomCategory string

const (
	Standard RoomCategory = "Standard"
	Deluxe   RoomCategory = "Deluxe"
	Suite    RoomCategory = "Suite"
	Family   RoomCategory = "Family"
)

// Categories lists every room category in detection priority order.
// Synonym matching, alternative suggestions and any other enumeration
// must iterate this slice rather than a map so the order is fixed.
var Categories = []RoomCategory{Standard, Deluxe, Suite, Family}

// Valid reports whether c is one of the four known categories.
func (c RoomCategory) Valid() bool {
	switch c {
	case Standard, Deluxe, Suite, Family:
		return true
	}
	return false
}

// BaseRate returns the fixed nightly base rate for a category in rupees.
// Unknown categories rate at zero.
func BaseRate(c RoomCategory) float64 {
	switch c {
	case Standard:
		return 8000
	case Deluxe:
		return 12000
	case Suite:
		return 18000
	case Family:
		return 15000
	}
	return 0
}

// TotalRooms returns the hotel's total inventory for a category.
func TotalRooms(c RoomCategory) int {
	switch c {
	case Standard:
		return 20
	case Deluxe:
		return 10
	case Suite:
		return 5
	case Family:
		return 8
	}
	return 0
}
