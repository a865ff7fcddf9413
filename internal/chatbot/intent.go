package chatbot

import "github.com/iliyamo/hotel-booking-chatbot/internal/model"

// intentRule pairs an intent with the keywords that trigger it.  Rules
// are evaluated in order and the first non-empty match wins, so price
// beats availability beats room info beats booking help.
type intentRule struct {
	Intent   model.Intent
	Keywords []string
}

var intentRules = []intentRule{
	{model.IntentPrice, []string{"price", "cost", "rate", "charge", "fee", "how much", "expensive", "cheap", "pricing", "tariff", "amount"}},
	{model.IntentAvailability, []string{"available", "availability", "free", "vacant", "reserve", "open", "empty"}},
	{model.IntentRoomInfo, []string{"room types", "what rooms", "describe", "facilities", "amenities", "features", "about rooms"}},
	{model.IntentBookingHelp, []string{"how to book", "booking process", "reservation", "summary", "booking details", "help"}},
}

// DetectIntent classifies the normalized question.  Questions matching no
// keyword set map to IntentUnknown, which renders the generic help reply.
func DetectIntent(input string) model.Intent {
	for _, rule := range intentRules {
		if containsAny(input, rule.Keywords...) {
			return rule.Intent
		}
	}
	return model.IntentUnknown
}
