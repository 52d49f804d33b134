package domain

import "fmt"

// Category is the closed set of listing categories. Filtering is an exact
// match on the category value, never a substring match.
type Category string

const (
	CategoryRestaurants   Category = "Restaurants"
	CategoryAccommodation Category = "Accommodation"
	CategoryArtCulture    Category = "Art & Culture"
	CategoryActivities    Category = "Activities"
	CategoryRetailGifts   Category = "Retail & Gifts"
	CategoryOutdoor       Category = "Outdoor & Adventure"
	CategoryAttractions   Category = "Tourism & Attractions"
	CategoryProperty      Category = "Property & Real Estate"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryRestaurants,
	CategoryAccommodation,
	CategoryArtCulture,
	CategoryActivities,
	CategoryRetailGifts,
	CategoryOutdoor,
	CategoryAttractions,
	CategoryProperty,
}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory returns the Category for s, or an error when s is not one of
// the known values. An empty string is rejected; callers treat "no category"
// as a nil *Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate is inside WGS 84 range. Entities with
// a nil or invalid coordinate render no marker.
func (c Coords) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Entity is a single directory listing: a local business or the listing half
// of an accommodation. ID and Coords are stable for the entity's lifetime in
// its catalog.
type Entity struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Coords      *Coords  `json:"coords,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image,omitempty"`
}

// Mappable reports whether the entity can be placed on the map.
func (e Entity) Mappable() bool { return e.Coords != nil && e.Coords.Valid() }

// Accommodation is a bookable stay. MaxGuests is always >= 1.
type Accommodation struct {
	Entity
	Price        float64  `json:"price"`
	PriceUnit    string   `json:"price_unit,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	MaxGuests    int      `json:"max_guests"`
	CheckInTime  string   `json:"check_in_time,omitempty"`
	CheckOutTime string   `json:"check_out_time,omitempty"`
}

// Criteria is the (query, category) pair constraining the visible entity set.
// It is mutated by user input only and resets on view change.
type Criteria struct {
	Query    string
	Category *Category
}
