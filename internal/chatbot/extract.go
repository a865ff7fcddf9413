package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
)

// Entity extraction works on ordered rule lists: each detector walks its
// rules top to bottom and returns at the first match.  The order is part
// of the contract, which is why the rules live in slices instead of maps.

// categoryRule binds a room category to the words guests use for it.
type categoryRule struct {
	Category model.RoomCategory
	Synonyms []string
}

var categoryRules = []categoryRule{
	{model.Standard, []string{"standard", "basic", "regular", "normal", "simple", "economy", "budget"}},
	{model.Deluxe, []string{"deluxe", "premium", "upgraded", "superior", "enhanced", "better", "luxurious"}},
	{model.Suite, []string{"suite", "luxury", "presidential", "executive", "penthouse", "vip", "royal"}},
	{model.Family, []string{"family", "group", "large", "big", "spacious", "kids", "children", "multiple bed"}},
}

// DetectCategory returns the first room category whose synonym list
// matches the normalized input.  The second return value is false when no
// synonym matched; callers default to Standard in that case.
func DetectCategory(input string) (model.RoomCategory, bool) {
	for _, rule := range categoryRules {
		if containsAny(input, rule.Synonyms...) {
			return rule.Category, true
		}
	}
	return "", false
}

var (
	residentSynonyms    = []string{"resident", "local", "citizen", "national", "domestic", "sri lankan"}
	nonResidentSynonyms = []string{"non resident", "foreigner", "tourist", "visitor", "international", "overseas", "foreign"}
)

// DetectResidency classifies the guest as resident or non-resident.
// Resident synonyms win over non-resident ones; no match defaults to
// non-resident.
func DetectResidency(input string) bool {
	if containsAny(input, residentSynonyms...) {
		return true
	}
	if containsAny(input, nonResidentSynonyms...) {
		return false
	}
	return false
}

// periodRule sets an initial check-in/check-out pair when one of its
// phrases appears in the question.  Only the first matching rule applies.
type periodRule struct {
	Phrases []string
	Apply   func(today time.Time) (checkIn, checkOut time.Time)
}

var periodRules = []periodRule{
	{[]string{"tonight", "today"}, func(today time.Time) (time.Time, time.Time) {
		return today, today.AddDate(0, 0, 1)
	}},
	{[]string{"tomorrow"}, func(today time.Time) (time.Time, time.Time) {
		return today.AddDate(0, 0, 1), today.AddDate(0, 0, 2)
	}},
	{[]string{"this weekend", "weekend"}, func(today time.Time) (time.Time, time.Time) {
		in := today.AddDate(0, 0, daysUntilFriday(today))
		return in, in.AddDate(0, 0, 2)
	}},
	// "next weekend" is listed after the plain weekend rule and therefore
	// never fires on its own: "weekend" is a substring of the phrase.  The
	// rule is kept so the chain documents the full trigger set.
	{[]string{"next weekend"}, func(today time.Time) (time.Time, time.Time) {
		in := today.AddDate(0, 0, (int(time.Friday)-int(today.Weekday())+7)%7+7)
		return in, in.AddDate(0, 0, 2)
	}},
	{[]string{"next week"}, func(today time.Time) (time.Time, time.Time) {
		in := today.AddDate(0, 0, 7)
		return in, in.AddDate(0, 0, 2)
	}},
	{[]string{"next month"}, func(today time.Time) (time.Time, time.Time) {
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		in := firstOfMonth.AddDate(0, 1, 4)
		return in, in.AddDate(0, 0, 2)
	}},
	{[]string{"christmas", "december"}, func(today time.Time) (time.Time, time.Time) {
		in := time.Date(today.Year(), time.December, 23, 0, 0, 0, 0, today.Location())
		if in.Before(today) {
			in = in.AddDate(1, 0, 0)
		}
		return in, in.AddDate(0, 0, 2)
	}},
	{[]string{"new year"}, func(today time.Time) (time.Time, time.Time) {
		in := time.Date(today.Year()+1, time.January, 1, 0, 0, 0, 0, today.Location())
		return in, in.AddDate(0, 0, 2)
	}},
}

// durationRule overrides the check-out date relative to whatever check-in
// the period chain produced.  A duration phrase compounds with a period
// phrase: "christmas" plus "a week" yields seven nights from Dec 23.
type durationRule struct {
	Phrases []string
	Nights  int
}

var durationRules = []durationRule{
	{[]string{"one night", "1 night"}, 1},
	{[]string{"two nights", "2 nights"}, 2},
	{[]string{"three nights", "3 nights"}, 3},
	{[]string{"a week", "7 days"}, 7},
}

// DetectDates resolves the stay window from the normalized input.  The
// period chain runs first (first match wins), then the duration chain
// independently overrides the check-out date.  With no trigger at all the
// stay defaults to one night starting a week from today.  The returned
// check-out is always strictly after check-in.
func DetectDates(input string, today time.Time) (checkIn, checkOut time.Time) {
	today = dateOnly(today)
	checkIn = today.AddDate(0, 0, 7)
	checkOut = checkIn.AddDate(0, 0, 1)

	for _, rule := range periodRules {
		if containsAny(input, rule.Phrases...) {
			checkIn, checkOut = rule.Apply(today)
			break
		}
	}

	for _, rule := range durationRules {
		if containsAny(input, rule.Phrases...) {
			checkOut = checkIn.AddDate(0, 0, rule.Nights)
			break
		}
	}

	if !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, 1)
	}
	return checkIn, checkOut
}

// daysUntilFriday returns the offset to the coming Friday; when today is
// already Friday the following week's Friday is used.
func daysUntilFriday(today time.Time) int {
	d := (int(time.Friday) - int(today.Weekday()) + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var standaloneNumberRe = regexp.MustCompile(`\b\d+\b`)

// quantityRule maps word numbers to room counts, checked only when no
// usable literal number appears in the question.
type quantityRule struct {
	Phrases  []string
	Quantity int
}

var quantityRules = []quantityRule{
	{[]string{"one", "single", "a room"}, 1},
	{[]string{"two", "double"}, 2},
	{[]string{"three"}, 3},
	{[]string{"four"}, 4},
	{[]string{"five"}, 5},
}

// DetectQuantity extracts the requested room count.  The first standalone
// integer wins when it falls in [1,10].  Integers immediately followed by
// "night"/"day" belong to a duration phrase and are not room counts.
// Out-of-range numbers fall back to the word-number chain; the default is
// a single room.
func DetectQuantity(input string) int {
	for _, loc := range standaloneNumberRe.FindAllStringIndex(input, -1) {
		rest := strings.TrimLeft(input[loc[1]:], " ")
		if strings.HasPrefix(rest, "night") || strings.HasPrefix(rest, "day") {
			continue
		}
		if n, err := strconv.Atoi(input[loc[0]:loc[1]]); err == nil && n >= 1 && n <= 10 {
			return n
		}
		break
	}
	for _, rule := range quantityRules {
		if containsAny(input, rule.Phrases...) {
			return rule.Quantity
		}
	}
	return 1
}

func containsAny(input string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(input, p) {
			return true
		}
	}
	return false
}
