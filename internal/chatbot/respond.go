package chatbot

import (
	"fmt"
	"strings"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// Response rendering is pure formatting: every function here receives the
// computed numbers and only picks templates and plural forms.

func priceReply(req model.StayRequest, rate float64, snapshot model.OccupancySnapshot) string {
	nights := req.Nights()
	total := rate * float64(nights) * float64(req.Quantity)

	guestType := "non-residents"
	if req.Resident {
		guestType = "residents"
	}

	demandInfo := " (Good availability)"
	if snapshot.Ratio > 0.7 {
		demandInfo = " (High demand period - limited availability)"
	} else if snapshot.Ratio > 0.4 {
		demandInfo = " (Moderate demand)"
	}

	return fmt.Sprintf("Predicted price for %d %s %s for %d %s (%s to %s) for %s:\n",
		req.Quantity, req.Category, plural("room", req.Quantity), nights, plural("night", nights),
		req.CheckIn.Format("Jan 02"), req.CheckOut.Format("Jan 02"), guestType) +
		fmt.Sprintf("Rate: Rs. %.2f per room per night%s\n", rate, demandInfo) +
		fmt.Sprintf("Total Cost: Rs. %.2f\n\n", total) +
		"*Price based on historical data and current demand patterns"
}

func availableReply(req model.StayRequest, snapshot model.OccupancySnapshot) string {
	level := "Excellent availability"
	if snapshot.Ratio > 0.7 {
		level = "Limited availability"
	} else if snapshot.Ratio > 0.4 {
		level = "Good availability"
	}

	return fmt.Sprintf("%s!\n", level) +
		fmt.Sprintf("%d %s %s predicted to be available\n", req.Quantity, req.Category, plural("room", req.Quantity)) +
		fmt.Sprintf("Check-in: %s | Check-out: %s (%d nights)\n\n",
			req.CheckIn.Format("Jan 02, 2006"), req.CheckOut.Format("Jan 02, 2006"), req.Nights()) +
		fmt.Sprintf("Current occupancy: %d/%d rooms (%.0f%%)\n",
			snapshot.Occupied, snapshot.Total, snapshot.Ratio*100)
}

func unavailableReply(req model.StayRequest, snapshot model.OccupancySnapshot, alternatives []string) string {
	return fmt.Sprintf("✗ %d %s %s predicted to be unavailable from %s to %s\n",
		req.Quantity, req.Category, plural("room", req.Quantity),
		req.CheckIn.Format("Jan 02"), req.CheckOut.Format("Jan 02")) +
		fmt.Sprintf("Current occupancy: %d/%d rooms (%.0f%%)\n\n",
			snapshot.Occupied, snapshot.Total, snapshot.Ratio*100) +
		"Based on booking patterns, you might consider:\n" +
		strings.Join(alternatives, "\n")
}

const allRoomsInfo = "Our Room Types:\n\n" +
	"• Standard - Basic amenities, ideal for solo/couples\n" +
	"• Deluxe - Spacious and modern with premium features\n" +
	"• Suite - Luxurious stay with city views and executive amenities\n" +
	"• Family - Perfect for families (up to 5 guests)\n"

var roomDetails = map[model.RoomCategory]string{
	model.Standard: "\n\nStandard Room:\n• Basic amenities\n• Ideal for solo travelers or couples\n• Air conditioning, TV, Wi-Fi\n• Single or double bed options",
	model.Deluxe:   "\n\nDeluxe Room:\n• Spacious and modern\n• Premium amenities\n• City or garden view\n• Work desk and seating area",
	model.Suite:    "\n\nSuite:\n• Luxurious accommodation\n• Separate living area\n• Premium city views\n• Executive amenities and services",
	model.Family:   "\n\nFamily Room:\n• Perfect for families (up to 5 guests)\n• Multiple beds or sofa bed\n• Extra space and storage\n• Family-friendly amenities",
}

// roomInfoReply describes all room types, appending detail for the one
// the guest asked about when a category was actually detected.
func roomInfoReply(category model.RoomCategory, detected bool) string {
	if detected {
		return allRoomsInfo + roomDetails[category]
	}
	return allRoomsInfo + "\n\nAsk about specific room types for detailed information!"
}

func bookingHelpReply() string {
	return "How to Make a Booking:\n\n" +
		"I can help you with:\n" +
		"✓ Check room availability\n" +
		"✓ Get price quotes\n" +
		"✓ Compare room types\n\n" +
		"For actual booking, please contact the reception\n"
}

func defaultReply() string {
	return "I'm here to help with:\n\n" +
		"Room Prices \n" +
		"Availability \n" +
		"Room Information \n" +
		"Example: 'Is a suite available for 2 nights next week for a tourist?'"
}

const (
	priceErrorReply        = "Unable to predict price at the moment. Please try again later."
	availabilityErrorReply = "Unable to check availability at the moment. Please try again with a clearer query."
)

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
