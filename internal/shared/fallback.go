package shared

import "github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"

// TownCenter is the default map camera for Dullstroom.
var TownCenter = domain.Coords{Lat: -25.4175, Lon: 30.1076}

const TownZoom = 14

func strp(s string) *string { return &s }

func coords(lat, lon float64) *domain.Coords { return &domain.Coords{Lat: lat, Lon: lon} }

// FallbackBusinesses is the bundled business catalog, served whenever the
// configured catalog source fails or returns nothing. The fallback is silent
// to the end user.
var FallbackBusinesses = []domain.Entity{
	{
		ID:          1,
		Name:        "The Highlander Restaurant",
		Category:    domain.CategoryRestaurants,
		Description: "Family-owned restaurant serving authentic South African cuisine with stunning mountain views",
		Address:     "12 Hugenote St, Dullstroom, 1110",
		Phone:       "+27 13 254 0031",
		Website:     strp("https://highlander.co.za"),
		Coords:      coords(-25.4175, 30.1544),
		Rating:      4.7,
		Reviews:     127,
		Image:       "https://images.unsplash.com/photo-1552566063-32e6af5d4bb8?w=400",
	},
	{
		ID:          2,
		Name:        "Mrs Simpson's",
		Category:    domain.CategoryRestaurants,
		Description: "Cozy restaurant with local cuisine.",
		Address:     "Main Street, Dullstroom",
		Phone:       "+27 13 254 0088",
		Coords:      coords(-25.41545673927404, 30.107736413385332),
		Rating:      4.6,
		Reviews:     98,
		Image:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400",
	},
	{
		ID:          3,
		Name:        "Dullstroom Gallery",
		Category:    domain.CategoryArtCulture,
		Description: "Local art gallery featuring South African artists and handcrafted goods",
		Address:     "8 Tedderfield Rd, Dullstroom, 1110",
		Phone:       "+27 13 254 0142",
		Coords:      coords(-25.419, 30.152),
		Rating:      4.5,
		Reviews:     63,
		Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400",
	},
	{
		ID:          4,
		Name:        "Trout Triangle Adventures",
		Category:    domain.CategoryActivities,
		Description: "Guided fishing tours and outdoor adventures in the Dullstroom area",
		Address:     "15 Dam Rd, Dullstroom, 1110",
		Phone:       "+27 13 254 0089",
		Website:     strp("https://trout-adventures.co.za"),
		Coords:      coords(-25.416, 30.158),
		Rating:      4.8,
		Reviews:     89,
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=400",
	},
	{
		ID:          5,
		Name:        "Earth Gear",
		Category:    domain.CategoryRetailGifts,
		Description: "Outdoor equipment and gifts.",
		Address:     "Shopping District, Dullstroom",
		Phone:       "+27 13 254 0175",
		Coords:      coords(-25.413330763950693, 30.11013720528195),
		Rating:      4.3,
		Reviews:     41,
		Image:       "https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=400",
	},
	{
		ID:          6,
		Name:        "Kosmas Stationery & Gift",
		Category:    domain.CategoryRetailGifts,
		Description: "Stationery and unique gift items.",
		Address:     "Main Street, Dullstroom",
		Phone:       "+27 13 254 0122",
		Coords:      coords(-25.412152156571196, 30.104644628018615),
		Rating:      4.2,
		Reviews:     27,
		Image:       "https://images.unsplash.com/photo-1513885535751-8b9238bd345a?w=400",
	},
	{
		ID:          7,
		Name:        "Dullstroom Dam Nature Reserve",
		Category:    domain.CategoryAttractions,
		Description: "Scenic dam and reserve, a favourite for trout fishing and birding.",
		Address:     "Dam Rd, Dullstroom",
		Phone:       "+27 13 254 0066",
		Coords:      coords(-25.41395311554934, 30.10588185006474),
		Rating:      4.7,
		Reviews:     154,
		Image:       "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=400",
	},
	{
		ID:          8,
		Name:        "Farms, Lodges & Estates",
		Category:    domain.CategoryOutdoor,
		Description: "Experience farm life and outdoor activities.",
		Address:     "Dullstroom",
		Phone:       "+27 13 254 0190",
		Coords:      coords(-25.42142053247414, 30.103432158910046),
		Rating:      4.4,
		Reviews:     38,
		Image:       "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=400",
	},
	{
		ID:          9,
		Name:        "Zest Property Group",
		Category:    domain.CategoryProperty,
		Description: "Real estate services and property management.",
		Address:     "Dullstroom",
		Phone:       "+27 13 254 0201",
		Coords:      coords(-25.41526686131065, 30.10289628896996),
		Rating:      4.1,
		Reviews:     12,
		Image:       "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=400",
	},
}

// FallbackAccommodations is the bundled accommodation catalog.
var FallbackAccommodations = []domain.Accommodation{
	{
		Entity: domain.Entity{
			ID:          101,
			Name:        "Critchley Hackle Lodge",
			Category:    domain.CategoryAccommodation,
			Description: "Luxury stone-cottage lodge with scenic views over its own trout dams.",
			Address:     "Teding van Berkhout St, Dullstroom",
			Phone:       "+27 13 254 0149",
			Website:     strp("https://critchleyhackle.co.za"),
			Coords:      coords(-25.418347743222068, 30.109825753861376),
			Rating:      4.8,
			Reviews:     212,
			Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
		},
		Price:        1850,
		PriceUnit:    "night",
		Amenities:    []string{"Fireplace", "Trout dam", "Breakfast included", "WiFi"},
		MaxGuests:    4,
		CheckInTime:  "14:00",
		CheckOutTime: "10:00",
	},
	{
		Entity: domain.Entity{
			ID:          102,
			Name:        "Dullstroom Inn",
			Category:    domain.CategoryAccommodation,
			Description: "Historic inn in the heart of town, pub downstairs and country rooms above.",
			Address:     "Central Dullstroom",
			Phone:       "+27 13 254 0071",
			Coords:      coords(-25.41494493857514, 30.10727345386131),
			Rating:      4.4,
			Reviews:     167,
			Image:       "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=400",
		},
		Price:        950,
		PriceUnit:    "night",
		Amenities:    []string{"Pub", "Breakfast included", "Pet friendly"},
		MaxGuests:    2,
		CheckInTime:  "14:00",
		CheckOutTime: "10:00",
	},
	{
		Entity: domain.Entity{
			ID:          103,
			Name:        "Mavungana",
			Category:    domain.CategoryAccommodation,
			Description: "Comfortable accommodation with mountain views.",
			Address:     "Dullstroom",
			Phone:       "+27 13 254 0118",
			Coords:      coords(-25.424415320795934, 30.10008468454961),
			Rating:      4.5,
			Reviews:     74,
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400",
		},
		Price:        1200,
		PriceUnit:    "night",
		Amenities:    []string{"Mountain views", "Self catering", "WiFi", "Parking"},
		MaxGuests:    6,
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
	},
	{
		Entity: domain.Entity{
			ID:          104,
			Name:        "Old Transvaal Inn",
			Category:    domain.CategoryAccommodation,
			Description: "Country guesthouse in a restored 1900s trading post.",
			Address:     "Main Rd, Dullstroom",
			Phone:       "+27 13 254 0222",
			Coords:      coords(-25.4162, 30.1069),
			Rating:      4.3,
			Reviews:     51,
			Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=400",
		},
		Price:        780,
		PriceUnit:    "night",
		Amenities:    []string{"Garden", "Breakfast included"},
		MaxGuests:    3,
		CheckInTime:  "14:00",
		CheckOutTime: "10:00",
	},
}

// FallbackCommunityPosts is the bundled community board content. There is no
// remote source for boards; this list is the catalog.
var FallbackCommunityPosts = []domain.CommunityPost{
	{
		ID:       1,
		Board:    domain.BoardLocalEvents,
		Title:    "Weekend Market This Saturday!",
		Author:   "Dullstroom Events",
		Content:  "Join us this Saturday for the Dullstroom Market at Cherry Grove! Lots of local crafts, food, and live music.",
		Image:    "https://images.unsplash.com/photo-1533900298318-6b8da08a523e?w=400&h=200&fit=crop",
		Comments: 18,
		Likes:    32,
	},
	{
		ID:       2,
		Board:    domain.BoardJobs,
		Title:    "Hiring: Housekeeper Needed",
		Author:   "Big Oak Cottages",
		Content:  "Looking for a reliable housekeeper. Experience preferred. Apply within.",
		Image:    "https://images.unsplash.com/photo-1556909075-f3e64e95b369?w=400&h=200&fit=crop",
		Comments: 12,
		Likes:    24,
	},
	{
		ID:       3,
		Board:    domain.BoardFishing,
		Title:    "Fishing Tips at Dullstroom Dam",
		Author:   "Paul's Tackle Shop",
		Content:  "Check out the best baits and tactics for trout season!",
		Image:    "https://images.unsplash.com/photo-1551076805-e1869033e561?w=400&h=200&fit=crop",
		Comments: 8,
		Likes:    20,
	},
	{
		ID:       4,
		Board:    domain.BoardLostFound,
		Title:    "Lost: Black & White Border Collie",
		Author:   "Mary L.",
		Content:  "Missing in the Oak Lane area. Please contact me if found!",
		Image:    "https://images.unsplash.com/photo-1551717743-49959800b1f6?w=400&h=200&fit=crop",
		Comments: 14,
		Likes:    15,
	},
	{
		ID:       5,
		Board:    domain.BoardLocalEvents,
		Title:    "Community Clean-Up Day",
		Author:   "Dullstroom Municipality",
		Content:  "Join us next weekend for our monthly community clean-up initiative. Meet at the town hall at 8 AM.",
		Image:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=200&fit=crop",
		Comments: 25,
		Likes:    45,
	},
}
