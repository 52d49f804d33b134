package domain

import "time"

// Guests is the guest composition of a booking draft. Adults is at least 1;
// Adults+Children never exceeds the accommodation's MaxGuests.
type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (g Guests) Total() int { return g.Adults + g.Children }

// BookingDraft is session-only state; it is never persisted.
type BookingDraft struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Guests   Guests    `json:"guests"`
}

// Quote is the derived price breakdown for a draft against one accommodation.
type Quote struct {
	AccommodationID int64   `json:"accommodation_id"`
	Nights          int     `json:"nights"`
	NightlyPrice    float64 `json:"nightly_price"`
	Total           float64 `json:"total"`
	Guests          Guests  `json:"guests"`
}

// Enquiry is a direct booking request to an accommodation. It is acknowledged
// with a reference and logged, nothing more.
type Enquiry struct {
	Reference       string    `json:"reference"`
	AccommodationID int64     `json:"accommodation_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Message         string    `json:"message,omitempty"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          Guests    `json:"guests"`
}
