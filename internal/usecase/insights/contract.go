package insights

import (
	"github.com/connecthub/searchcore/internal/domain/entity"
	domhist "github.com/connecthub/searchcore/internal/domain/history"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
)

// HistoryReader exposes the recorded search history, newest first.
type HistoryReader interface {
	All() []domhist.Entry
}

// SavedReader exposes saved searches and presets for recommendations.
type SavedReader interface {
	Searches() []domsaved.Search
	Presets() []domsaved.Preset
}

// Index is the read contract over the collections insights consults.
type Index interface {
	People() []entity.Person
	Hashtags() []entity.Hashtag
}
