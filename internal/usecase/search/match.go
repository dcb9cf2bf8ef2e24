package search

import (
	"strings"

	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

// Matching is case-insensitive substring containment over a fixed list of
// fields per collection. The query is lower-cased once by the caller; each
// candidate field is lower-cased here.
func containsFold(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}

func anyContainsFold(fields []string, loweredQuery string) bool {
	for _, f := range fields {
		if containsFold(f, loweredQuery) {
			return true
		}
	}
	return false
}

// locationMatches applies the optional location filter. Entities without a
// location field pass unconditionally.
func locationMatches(locationText, loweredFilter string) bool {
	if loweredFilter == "" {
		return true
	}
	return containsFold(locationText, loweredFilter)
}

func matchPerson(p entity.Person, q, loc string) bool {
	if !locationMatches(p.LocationText, loc) {
		return false
	}
	return containsFold(p.DisplayName, q) ||
		containsFold(p.Handle, q) ||
		containsFold(p.Workplace, q) ||
		anyContainsFold(p.Interests, q)
}

func matchPost(p entity.Post, q string, dr *filter.DateRange) bool {
	if dr != nil && !dr.Contains(p.CreatedAt) {
		return false
	}
	return containsFold(p.Text, q) || anyContainsFold(p.Hashtags, q)
}

func matchGroup(g entity.Group, q, loc string) bool {
	if !locationMatches(g.LocationText, loc) {
		return false
	}
	return containsFold(g.Name, q) ||
		containsFold(g.Description, q) ||
		containsFold(g.Category, q)
}

func matchEvent(e entity.Event, q, loc string) bool {
	if !locationMatches(e.LocationText, loc) {
		return false
	}
	return containsFold(e.Name, q) ||
		containsFold(e.Description, q) ||
		containsFold(e.Category, q)
}

func matchMarketplace(m entity.MarketplaceItem, q, loc string) bool {
	if !locationMatches(m.LocationText, loc) {
		return false
	}
	return containsFold(m.Title, q) ||
		containsFold(m.Description, q) ||
		containsFold(m.Category, q)
}

func matchHashtag(h entity.Hashtag, q string) bool {
	return containsFold(h.Tag, q)
}

func matchLocation(l entity.Location, q string) bool {
	return containsFold(l.Name, q) || containsFold(l.Country, q)
}
