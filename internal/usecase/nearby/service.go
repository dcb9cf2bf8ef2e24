// Package nearby implements haversine radius search over the index.
package nearby

import (
	"sort"

	"github.com/connecthub/searchcore/internal/domain"
	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/geo"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
	"github.com/connecthub/searchcore/internal/domain/search/result"
)

// Index is the read contract over the collections geo search scans.
type Index interface {
	People() []entity.Person
	Groups() []entity.Group
	Events() []entity.Event
	Marketplace() []entity.MarketplaceItem
	Locations() []entity.Location
}

// Service finds entities within a radius of a point.
type Service struct {
	index Index
}

// New creates a geo search service.
func New(index Index) *Service {
	return &Service{index: index}
}

// Nearby returns every entity with coordinates within radiusKm of the query
// point (boundary inclusive), each annotated with its distance and sorted
// ascending per collection. Entities without coordinates are silently
// excluded. A non-positive radius falls back to the default.
func (s *Service) Nearby(lat, lng float64, radiusKm int) (result.NearbyBundle, error) {
	if !geo.ValidateCoordinates(lat, lng) {
		return result.NearbyBundle{}, domain.ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		radiusKm = filter.DefaultRadiusKm
	}
	radius := float64(radiusKm)

	var b result.NearbyBundle

	for _, p := range s.index.People() {
		if d, ok := within(p.Coords, lat, lng, radius); ok {
			b.People = append(b.People, result.WithDistance[entity.Person]{Entity: p, DistanceKm: d})
		}
	}
	for _, g := range s.index.Groups() {
		if d, ok := within(g.Coords, lat, lng, radius); ok {
			b.Groups = append(b.Groups, result.WithDistance[entity.Group]{Entity: g, DistanceKm: d})
		}
	}
	for _, e := range s.index.Events() {
		if d, ok := within(e.Coords, lat, lng, radius); ok {
			b.Events = append(b.Events, result.WithDistance[entity.Event]{Entity: e, DistanceKm: d})
		}
	}
	for _, m := range s.index.Marketplace() {
		if d, ok := within(m.Coords, lat, lng, radius); ok {
			b.Marketplace = append(b.Marketplace, result.WithDistance[entity.MarketplaceItem]{Entity: m, DistanceKm: d})
		}
	}
	for _, l := range s.index.Locations() {
		d := geo.Haversine(lat, lng, l.Lat, l.Lng)
		if d <= radius {
			b.Locations = append(b.Locations, result.WithDistance[entity.Location]{Entity: l, DistanceKm: d})
		}
	}

	sortAscending(b.People)
	sortAscending(b.Groups)
	sortAscending(b.Events)
	sortAscending(b.Marketplace)
	sortAscending(b.Locations)
	b.Sum()
	return b, nil
}

func within(c *entity.Coordinates, lat, lng, radiusKm float64) (float64, bool) {
	if c == nil {
		return 0, false
	}
	d := geo.Haversine(lat, lng, c.Lat, c.Lng)
	if d > radiusKm {
		return 0, false
	}
	return d, true
}

func sortAscending[T any](items []result.WithDistance[T]) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DistanceKm < items[j].DistanceKm
	})
}
