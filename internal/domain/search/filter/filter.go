// Package filter defines the search filter state and its merge semantics.
package filter

import "time"

// DefaultRadiusKm is the geo radius applied when the caller sets none.
const DefaultRadiusKm = 25

// Type selects which collections a search scans.
type Type string

// Filter types.
const (
	TypeAll         Type = "all"
	TypePeople      Type = "people"
	TypePosts       Type = "posts"
	TypeGroups      Type = "groups"
	TypeEvents      Type = "events"
	TypeMarketplace Type = "marketplace"
	TypeHashtags    Type = "hashtags"
	TypeLocations   Type = "locations"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	switch t {
	case TypeAll, TypePeople, TypePosts, TypeGroups, TypeEvents,
		TypeMarketplace, TypeHashtags, TypeLocations:
		return true
	}
	return false
}

// Sort selects the result ordering strategy.
type Sort string

// Sort orders.
const (
	SortRelevance Sort = "relevance"
	SortRecent    Sort = "recent"
	SortPopular   Sort = "popular"
)

// IsValid checks if the sort is one of the supported values.
func (s Sort) IsValid() bool {
	return s == SortRelevance || s == SortRecent || s == SortPopular
}

// DateRange is an inclusive timestamp range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Filters is the engine's sticky filter state. It persists across search
// calls; each call merges an Update on top of it.
type Filters struct {
	Type      Type       `json:"type"`
	Location  string     `json:"location,omitempty"`
	DateRange *DateRange `json:"date_range,omitempty"`
	SortBy    Sort       `json:"sort_by"`
	RadiusKm  int        `json:"radius_km"`
}

// Default returns the initial filter state.
func Default() Filters {
	return Filters{
		Type:     TypeAll,
		SortBy:   SortRelevance,
		RadiusKm: DefaultRadiusKm,
	}
}

// Update is a partial filter change; nil fields keep the prior value.
type Update struct {
	Type      *Type
	Location  *string
	DateRange *DateRange
	SortBy    *Sort
	RadiusKm  *int
}

// Merge applies an update on top of the current state. Set fields override,
// unset fields retain their prior value.
func (f Filters) Merge(u Update) Filters {
	if u.Type != nil {
		f.Type = *u.Type
	}
	if u.Location != nil {
		f.Location = *u.Location
	}
	if u.DateRange != nil {
		f.DateRange = u.DateRange
	}
	if u.SortBy != nil {
		f.SortBy = *u.SortBy
	}
	if u.RadiusKm != nil {
		f.RadiusKm = *u.RadiusKm
	}
	return f
}

// Normalize re-defaults malformed fields. Degenerate filter input is
// corrected, never rejected.
func (f Filters) Normalize() Filters {
	if !f.Type.IsValid() {
		f.Type = TypeAll
	}
	if !f.SortBy.IsValid() {
		f.SortBy = SortRelevance
	}
	if f.RadiusKm <= 0 {
		f.RadiusKm = DefaultRadiusKm
	}
	return f
}
