package index

import (
	"time"

	"github.com/connecthub/searchcore/internal/domain/entity"
)

// DefaultDataset returns the demo dataset the index is seeded with at
// startup. Post and event timestamps are expressed relative to now so
// recency scoring behaves the same regardless of when the process starts.
func DefaultDataset(now time.Time) Dataset {
	coords := func(lat, lng float64) *entity.Coordinates {
		return &entity.Coordinates{Lat: lat, Lng: lng}
	}

	return Dataset{
		People: []entity.Person{
			{
				ID:            "u1",
				DisplayName:   "Sarah Johnson",
				Handle:        "@sarahjohnson",
				LocationText:  "New York, NY",
				Coords:        coords(40.7128, -74.0060),
				Interests:     []string{"photography", "travel", "coffee"},
				Workplace:     "Creative Studios",
				Verified:      true,
				FollowerCount: 15400,
			},
			{
				ID:            "u2",
				DisplayName:   "Mike Chen",
				Handle:        "@mikechen",
				LocationText:  "San Francisco, CA",
				Coords:        coords(37.7749, -122.4194),
				Interests:     []string{"tech", "gaming", "music"},
				Workplace:     "TechCorp",
				Verified:      false,
				FollowerCount: 8900,
			},
			{
				ID:            "u3",
				DisplayName:   "Emma Davis",
				Handle:        "@emmadavis",
				LocationText:  "Brooklyn, NY",
				Coords:        coords(40.6782, -73.9442),
				Interests:     []string{"art", "photography", "yoga"},
				Workplace:     "Design Hub",
				Verified:      true,
				FollowerCount: 23100,
			},
			{
				ID:            "u4",
				DisplayName:   "Alex Rivera",
				Handle:        "@alexrivera",
				LocationText:  "Austin, TX",
				Interests:     []string{"fitness", "cooking", "travel"},
				Workplace:     "FitLife Gym",
				Verified:      false,
				FollowerCount: 3400,
			},
			{
				ID:            "u5",
				DisplayName:   "Lisa Park",
				Handle:        "@lisapark",
				LocationText:  "San Francisco, CA",
				Coords:        coords(37.7849, -122.4094),
				Interests:     []string{"coffee", "books", "hiking"},
				Workplace:     "TechCorp",
				Verified:      false,
				FollowerCount: 5600,
			},
		},
		Posts: []entity.Post{
			{
				ID:        "p1",
				AuthorID:  "u1",
				Text:      "Golden hour in Central Park never disappoints",
				Hashtags:  []string{"photography", "nyc", "goldenhour"},
				LikeCount: 892,
				CreatedAt: now.Add(-3 * time.Hour),
			},
			{
				ID:        "p2",
				AuthorID:  "u2",
				Text:      "Shipped a new release today, time for coffee",
				Hashtags:  []string{"tech", "coffee"},
				LikeCount: 154,
				CreatedAt: now.Add(-26 * time.Hour),
			},
			{
				ID:        "p3",
				AuthorID:  "u3",
				Text:      "New mural finished in Bushwick, come see it",
				Hashtags:  []string{"art", "brooklyn"},
				LikeCount: 2310,
				CreatedAt: now.Add(-72 * time.Hour),
			},
			{
				ID:        "p4",
				AuthorID:  "u4",
				Text:      "Morning workout done. Travel plans next!",
				Hashtags:  []string{"fitness", "travel"},
				LikeCount: 67,
				CreatedAt: now.Add(-9 * 24 * time.Hour),
			},
			{
				ID:        "p5",
				AuthorID:  "u5",
				Text:      "Best pour-over in the city, hands down",
				Hashtags:  []string{"coffee", "sf"},
				LikeCount: 431,
				CreatedAt: now.Add(-30 * 24 * time.Hour),
			},
		},
		Groups: []entity.Group{
			{
				ID:           "g1",
				Name:         "NYC Photography Club",
				Description:  "Weekly photo walks and critique sessions around New York",
				MemberCount:  4820,
				Category:     "photography",
				LocationText: "New York, NY",
				Coords:       coords(40.7306, -73.9866),
			},
			{
				ID:           "g2",
				Name:         "Bay Area Founders",
				Description:  "Startup founders and operators in San Francisco",
				MemberCount:  2140,
				Category:     "tech",
				LocationText: "San Francisco, CA",
				Coords:       coords(37.7899, -122.4004),
			},
			{
				ID:           "g3",
				Name:         "Brooklyn Foodies",
				Description:  "Restaurant crawls and home cooking swaps",
				MemberCount:  980,
				Category:     "food",
				LocationText: "Brooklyn, NY",
				Coords:       coords(40.6850, -73.9770),
			},
		},
		Events: []entity.Event{
			{
				ID:            "e1",
				Name:          "Central Park Photo Walk",
				Description:   "Sunrise shoot at the Bow Bridge, all levels welcome",
				LocationText:  "Central Park, New York",
				Coords:        coords(40.7829, -73.9654),
				Date:          now.Add(5 * 24 * time.Hour),
				AttendeeCount: 86,
				Category:      "photography",
			},
			{
				ID:            "e2",
				Name:          "Golden Gate Tech Meetup",
				Description:   "Lightning talks on infrastructure and tooling",
				LocationText:  "San Francisco, CA",
				Coords:        coords(37.8080, -122.4177),
				Date:          now.Add(12 * 24 * time.Hour),
				AttendeeCount: 230,
				Category:      "tech",
			},
			{
				ID:            "e3",
				Name:          "Brooklyn Jazz Night",
				Description:   "Live sets from local quartets",
				LocationText:  "Williamsburg, Brooklyn",
				Coords:        coords(40.7081, -73.9571),
				Date:          now.Add(2 * 24 * time.Hour),
				AttendeeCount: 140,
				Category:      "music",
			},
		},
		Marketplace: []entity.MarketplaceItem{
			{
				ID:           "m1",
				Title:        "Canon EOS R6 with 24-105mm lens",
				Description:  "Lightly used full-frame camera, original box",
				Price:        1850,
				Category:     "electronics",
				LocationText: "New York, NY",
				Coords:       coords(40.7200, -74.0000),
				SellerID:     "u1",
				Rating:       4.8,
			},
			{
				ID:           "m2",
				Title:        "Standing desk, adjustable",
				Description:  "Motorized sit-stand desk, 140x70cm top",
				Price:        320,
				Category:     "furniture",
				LocationText: "San Francisco, CA",
				Coords:       coords(37.7700, -122.4300),
				SellerID:     "u2",
				Rating:       4.2,
			},
			{
				ID:           "m3",
				Title:        "Espresso machine, dual boiler",
				Description:  "Prosumer espresso machine with grinder",
				Price:        740,
				Category:     "appliances",
				LocationText: "Brooklyn, NY",
				Coords:       coords(40.6900, -73.9500),
				SellerID:     "u3",
				Rating:       4.6,
			},
		},
		Hashtags: []entity.Hashtag{
			{Tag: "photography", PostCount: 48210, Trending: true},
			{Tag: "travel", PostCount: 39500, Trending: false},
			{Tag: "coffee", PostCount: 27800, Trending: false},
			{Tag: "tech", PostCount: 51200, Trending: true},
			{Tag: "fitness", PostCount: 18400, Trending: false},
			{Tag: "art", PostCount: 22100, Trending: false},
			{Tag: "music", PostCount: 33000, Trending: true},
		},
		Locations: []entity.Location{
			{ID: "l1", Name: "New York", Type: "city", Country: "United States", Lat: 40.7128, Lng: -74.0060, Population: 8336000},
			{ID: "l2", Name: "San Francisco", Type: "city", Country: "United States", Lat: 37.7749, Lng: -122.4194, Population: 873000},
			{ID: "l3", Name: "London", Type: "city", Country: "United Kingdom", Lat: 51.5074, Lng: -0.1278, Population: 8982000},
			{ID: "l4", Name: "Tokyo", Type: "city", Country: "Japan", Lat: 35.6762, Lng: 139.6503, Population: 13960000},
		},
	}
}
