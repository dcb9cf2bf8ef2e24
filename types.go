package searchcore

import "time"

// SearchType selects which collections a search scans.
type SearchType string

// Search types.
const (
	SearchAll         SearchType = "all"
	SearchPeople      SearchType = "people"
	SearchPosts       SearchType = "posts"
	SearchGroups      SearchType = "groups"
	SearchEvents      SearchType = "events"
	SearchMarketplace SearchType = "marketplace"
	SearchHashtags    SearchType = "hashtags"
	SearchLocations   SearchType = "locations"
)

// SortOrder selects the result ordering strategy.
type SortOrder string

// Sort orders.
const (
	SortRelevance SortOrder = "relevance"
	SortRecent    SortOrder = "recent"
	SortPopular   SortOrder = "popular"
)

// DateRange is an inclusive timestamp range for post filtering.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Filters is the engine's sticky filter state.
type Filters struct {
	Type      SearchType
	Location  string
	DateRange *DateRange
	SortBy    SortOrder
	RadiusKm  int
}

// FilterUpdate is a partial filter change; nil fields keep the prior value.
type FilterUpdate struct {
	Type      *SearchType
	Location  *string
	DateRange *DateRange
	SortBy    *SortOrder
	RadiusKm  *int
}

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Person is a user profile in the search index.
type Person struct {
	ID            string
	DisplayName   string
	Handle        string
	Location      string
	Coords        *Coordinates
	Interests     []string
	Workplace     string
	Verified      bool
	FollowerCount int
}

// Post is a piece of user content.
type Post struct {
	ID        string
	AuthorID  string
	Text      string
	Hashtags  []string
	LikeCount int
	CreatedAt time.Time
}

// Group is a community in the search index.
type Group struct {
	ID          string
	Name        string
	Description string
	MemberCount int
	Category    string
	Location    string
	Coords      *Coordinates
}

// Event is a scheduled gathering.
type Event struct {
	ID            string
	Name          string
	Description   string
	Location      string
	Coords        *Coordinates
	Date          time.Time
	AttendeeCount int
	Category      string
}

// MarketplaceItem is a listing for sale.
type MarketplaceItem struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Location    string
	Coords      *Coordinates
	SellerID    string
	Rating      float64
}

// Hashtag is a tag with aggregate activity counts.
type Hashtag struct {
	Tag       string
	PostCount int
	Trending  bool
}

// Location is a known place searchable by name.
type Location struct {
	ID         string
	Name       string
	Type       string
	Country    string
	Lat        float64
	Lng        float64
	Population int
}

// Results is a search result bundle, one slice per collection. Each slice is
// ranked independently; Total sums them all.
type Results struct {
	People      []Person
	Posts       []Post
	Groups      []Group
	Events      []Event
	Marketplace []MarketplaceItem
	Hashtags    []Hashtag
	Locations   []Location
	Total       int
}

// Nearby pairs an entity with its distance from the query point.
type Nearby[T any] struct {
	Item       T
	DistanceKm float64
}

// NearbyResults is a geo search result bundle, each collection sorted by
// distance ascending.
type NearbyResults struct {
	People      []Nearby[Person]
	Groups      []Nearby[Group]
	Events      []Nearby[Event]
	Marketplace []Nearby[MarketplaceItem]
	Locations   []Nearby[Location]
	Total       int
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Kind        string
	DisplayText string
	Subtext     string
	Icon        string
	SourceID    string
}

// HistoryEntry is one recorded search.
type HistoryEntry struct {
	Query       string
	Timestamp   time.Time
	ResultCount int
}

// SavedSearch is a persisted query with its filter snapshot.
type SavedSearch struct {
	ID                   string
	Query                string
	Filters              Filters
	CreatedAt            time.Time
	NotificationsEnabled bool
}

// FilterPreset is a named, persisted filter snapshot.
type FilterPreset struct {
	ID        string
	Name      string
	Filters   Filters
	CreatedAt time.Time
}

// QueryCount pairs a query with its frequency in history.
type QueryCount struct {
	Query string
	Count int
}

// HourCount pairs an hour of day (0-23) with its search count.
type HourCount struct {
	Hour  int
	Count int
}

// CategoryCount pairs a query category with its frequency.
type CategoryCount struct {
	Category string
	Count    int
}

// Recommendation is an actionable suggestion; Action is a symbolic
// identifier interpreted by the caller.
type Recommendation struct {
	Type    string
	Message string
	Action  string
}

// SearchPatterns summarizes temporal search behavior.
type SearchPatterns struct {
	MostActiveDay         string
	AverageSearchesPerDay float64
	TotalDays             int
}

// InsightsReport is the full derived analytics bundle.
type InsightsReport struct {
	PopularSearches     []QueryCount
	RecommendedSearches []string
	Patterns            SearchPatterns
	PeakHours           []HourCount
	Categories          []CategoryCount
	Recommendations     []Recommendation
}
