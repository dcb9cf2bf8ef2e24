// Package entity defines the searchable entity variants held by the index.
//
// The seven variants form a closed set; code that needs variant-specific
// fields (ranking, geo search, suggestions) type-switches on the concrete
// type rather than probing for field presence.
package entity

import "time"

// Kind identifies a searchable entity variant.
type Kind string

// Entity kinds.
const (
	KindPerson      Kind = "person"
	KindPost        Kind = "post"
	KindGroup       Kind = "group"
	KindEvent       Kind = "event"
	KindMarketplace Kind = "marketplace"
	KindHashtag     Kind = "hashtag"
	KindLocation    Kind = "location"
)

// Entity is implemented by all seven index variants.
type Entity interface {
	Kind() Kind
}

// Coordinates is a geographic point. Entities without coordinates carry a
// nil *Coordinates and are excluded from geo search.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Person is a user profile.
type Person struct {
	ID            string       `json:"id"`
	DisplayName   string       `json:"display_name"`
	Handle        string       `json:"handle"`
	LocationText  string       `json:"location_text"`
	Coords        *Coordinates `json:"coords,omitempty"`
	Interests     []string     `json:"interests"`
	Workplace     string       `json:"workplace"`
	Verified      bool         `json:"verified"`
	FollowerCount int          `json:"follower_count"`
}

// Kind implements Entity.
func (Person) Kind() Kind { return KindPerson }

// Post is a user-authored post.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	Hashtags  []string  `json:"hashtags"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Kind implements Entity.
func (Post) Kind() Kind { return KindPost }

// Group is a member community.
type Group struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	MemberCount  int          `json:"member_count"`
	Category     string       `json:"category"`
	LocationText string       `json:"location_text"`
	Coords       *Coordinates `json:"coords,omitempty"`
}

// Kind implements Entity.
func (Group) Kind() Kind { return KindGroup }

// Event is a scheduled gathering.
type Event struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	LocationText  string       `json:"location_text"`
	Coords        *Coordinates `json:"coords,omitempty"`
	Date          time.Time    `json:"date"`
	AttendeeCount int          `json:"attendee_count"`
	Category      string       `json:"category"`
}

// Kind implements Entity.
func (Event) Kind() Kind { return KindEvent }

// MarketplaceItem is a listing offered for sale.
type MarketplaceItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Category     string       `json:"category"`
	LocationText string       `json:"location_text"`
	Coords       *Coordinates `json:"coords,omitempty"`
	SellerID     string       `json:"seller_id"`
	Rating       float64      `json:"rating"`
}

// Kind implements Entity.
func (MarketplaceItem) Kind() Kind { return KindMarketplace }

// Hashtag is identified by its tag; it has no numeric id.
type Hashtag struct {
	Tag       string `json:"tag"`
	PostCount int    `json:"post_count"`
	Trending  bool   `json:"trending"`
}

// Kind implements Entity.
func (Hashtag) Kind() Kind { return KindHashtag }

// Location is a named place used as a geo anchor and suggestion source.
type Location struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population int     `json:"population"`
}

// Kind implements Entity.
func (Location) Kind() Kind { return KindLocation }
