package chatbot

import (
	"testing"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		in   string
		want model.Intent
	}{
		{"how much is a suite", model.IntentPrice},
		{"what is the nightly rate", model.IntentPrice},
		{"is that expensive", model.IntentPrice},
		{"is a room available next week", model.IntentAvailability},
		{"any vacant rooms", model.IntentAvailability},
		{"what room types do you have", model.IntentRoomInfo},
		{"describe the suite", model.IntentRoomInfo},
		{"tell me about rooms", model.IntentRoomInfo},
		{"how to book a room", model.IntentBookingHelp},
		{"i need help", model.IntentBookingHelp},
		{"good morning", model.IntentUnknown},
		{"", model.IntentUnknown},
	}
	for _, tt := range tests {
		if got := DetectIntent(tt.in); got != tt.want {
			t.Errorf("DetectIntent(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectIntentPriorityOrder(t *testing.T) {
	// Price keywords are evaluated before availability keywords.
	if got := DetectIntent("what is the cost if a room is available"); got != model.IntentPrice {
		t.Errorf("price should outrank availability, got %q", got)
	}
	// Availability outranks booking help.
	if got := DetectIntent("can i reserve a free room"); got != model.IntentAvailability {
		t.Errorf("availability should outrank booking help, got %q", got)
	}
}
