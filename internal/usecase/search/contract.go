package search

import (
	"context"

	"github.com/connecthub/searchcore/internal/domain/entity"
)

// Index is the read contract over the seven searchable collections.
type Index interface {
	People() []entity.Person
	Posts() []entity.Post
	Groups() []entity.Group
	Events() []entity.Event
	Marketplace() []entity.MarketplaceItem
	Hashtags() []entity.Hashtag
	Locations() []entity.Location
}

// Recorder appends completed searches to the history store.
type Recorder interface {
	Record(ctx context.Context, query string, resultCount int) error
}
