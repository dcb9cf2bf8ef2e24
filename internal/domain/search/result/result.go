// Package result defines the bundles returned by search and geo lookups.
package result

import "github.com/connecthub/searchcore/internal/domain/entity"

// Bundle holds ranked matches per collection. Total is the sum of all
// per-collection counts.
type Bundle struct {
	People      []entity.Person          `json:"people"`
	Posts       []entity.Post            `json:"posts"`
	Groups      []entity.Group           `json:"groups"`
	Events      []entity.Event           `json:"events"`
	Marketplace []entity.MarketplaceItem `json:"marketplace"`
	Hashtags    []entity.Hashtag         `json:"hashtags"`
	Locations   []entity.Location        `json:"locations"`
	Total       int                      `json:"total"`
}

// Sum recomputes Total from the per-collection counts.
func (b *Bundle) Sum() {
	b.Total = len(b.People) + len(b.Posts) + len(b.Groups) + len(b.Events) +
		len(b.Marketplace) + len(b.Hashtags) + len(b.Locations)
}

// WithDistance annotates an entity with its great-circle distance from the
// geo query point.
type WithDistance[T any] struct {
	Entity     T       `json:"entity"`
	DistanceKm float64 `json:"distance_km"`
}

// NearbyBundle holds geo matches per collection, each sorted by ascending
// distance.
type NearbyBundle struct {
	People      []WithDistance[entity.Person]          `json:"people"`
	Groups      []WithDistance[entity.Group]           `json:"groups"`
	Events      []WithDistance[entity.Event]           `json:"events"`
	Marketplace []WithDistance[entity.MarketplaceItem] `json:"marketplace"`
	Locations   []WithDistance[entity.Location]        `json:"locations"`
	Total       int                                    `json:"total"`
}

// Sum recomputes Total from the per-collection counts.
func (b *NearbyBundle) Sum() {
	b.Total = len(b.People) + len(b.Groups) + len(b.Events) +
		len(b.Marketplace) + len(b.Locations)
}
