package app

import (
	"math"
	"time"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// Nights returns the billable night count for a check-in/check-out pair,
// ceil of the day difference, never less than 1. An inverted or same-day
// range yields 1 night rather than an error; see DESIGN.md for the call.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// Total is the pure price product; no currency rounding.
func Total(nightlyPrice float64, nights int) float64 {
	return nightlyPrice * float64(nights)
}

// ClampGuests bounds a guest composition against an accommodation's maximum
// occupancy. Adults is clamped to [1, maxOccupancy] first; children's upper
// bound depends on the already-clamped adults value.
func ClampGuests(adults, children, maxOccupancy int) domain.Guests {
	if maxOccupancy < 1 {
		maxOccupancy = 1
	}
	if adults < 1 {
		adults = 1
	}
	if adults > maxOccupancy {
		adults = maxOccupancy
	}
	if children < 0 {
		children = 0
	}
	if children > maxOccupancy-adults {
		children = maxOccupancy - adults
	}
	return domain.Guests{Adults: adults, Children: children}
}

// DefaultDraft is the initial booking state: tomorrow to the day after,
// two adults.
func DefaultDraft(now time.Time) domain.BookingDraft {
	day := now.Truncate(24 * time.Hour)
	return domain.BookingDraft{
		CheckIn:  day.AddDate(0, 0, 1),
		CheckOut: day.AddDate(0, 0, 2),
		Guests:   domain.Guests{Adults: 2, Children: 0},
	}
}

// QuoteFor derives the full price breakdown for a draft against one
// accommodation, clamping guests on the way.
func QuoteFor(a domain.Accommodation, draft domain.BookingDraft) domain.Quote {
	nights := Nights(draft.CheckIn, draft.CheckOut)
	guests := ClampGuests(draft.Guests.Adults, draft.Guests.Children, a.MaxGuests)
	return domain.Quote{
		AccommodationID: a.ID,
		Nights:          nights,
		NightlyPrice:    a.Price,
		Total:           Total(a.Price, nights),
		Guests:          guests,
	}
}
