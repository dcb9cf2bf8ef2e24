// Package index holds the in-memory searchable collections.
//
// The repository is populated once at startup and never mutated afterwards;
// it stands in for a live ingest pipeline feeding a real index.
package index

import "github.com/connecthub/searchcore/internal/domain/entity"

// Dataset is the full set of collections loaded into the index.
type Dataset struct {
	People      []entity.Person
	Posts       []entity.Post
	Groups      []entity.Group
	Events      []entity.Event
	Marketplace []entity.MarketplaceItem
	Hashtags    []entity.Hashtag
	Locations   []entity.Location
}

// Repo is the immutable seven-collection index store.
type Repo struct {
	data Dataset
}

// New creates an index populated with the given dataset.
func New(data Dataset) *Repo {
	return &Repo{data: data}
}

// People returns the person collection.
func (r *Repo) People() []entity.Person { return r.data.People }

// Posts returns the post collection.
func (r *Repo) Posts() []entity.Post { return r.data.Posts }

// Groups returns the group collection.
func (r *Repo) Groups() []entity.Group { return r.data.Groups }

// Events returns the event collection.
func (r *Repo) Events() []entity.Event { return r.data.Events }

// Marketplace returns the marketplace listing collection.
func (r *Repo) Marketplace() []entity.MarketplaceItem { return r.data.Marketplace }

// Hashtags returns the hashtag collection.
func (r *Repo) Hashtags() []entity.Hashtag { return r.data.Hashtags }

// Locations returns the location collection.
func (r *Repo) Locations() []entity.Location { return r.data.Locations }

// Counts returns the number of entities per collection.
func (r *Repo) Counts() map[entity.Kind]int {
	return map[entity.Kind]int{
		entity.KindPerson:      len(r.data.People),
		entity.KindPost:        len(r.data.Posts),
		entity.KindGroup:       len(r.data.Groups),
		entity.KindEvent:       len(r.data.Events),
		entity.KindMarketplace: len(r.data.Marketplace),
		entity.KindHashtag:     len(r.data.Hashtags),
		entity.KindLocation:    len(r.data.Locations),
	}
}
