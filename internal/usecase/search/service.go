package search

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/history"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
	"github.com/connecthub/searchcore/internal/domain/search/result"
)

// Service is the query engine: it matches, ranks, and records searches over
// the immutable index. Filter state is sticky across calls; the mutex lets
// concurrent HTTP callers share one engine even though each call is
// synchronous end to end.
type Service struct {
	index   Index
	history Recorder
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	filters   filter.Filters
	lastQuery string
	last      result.Bundle
}

// New creates a search service with default filter state.
func New(index Index, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		index:   index,
		history: recorder,
		logger:  logger,
		now:     time.Now,
		filters: filter.Default(),
	}
}

// WithClock overrides the time source (recency scoring, history stamps).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search merges the filter update into the sticky state, matches and ranks
// the enabled collections, and records the query in history. Queries shorter
// than two runes return an empty bundle and leave history untouched; the
// filter merge still happens first, in call order.
func (s *Service) Search(ctx context.Context, query string, upd filter.Update) result.Bundle {
	s.mu.Lock()
	s.filters = s.filters.Merge(upd).Normalize()
	f := s.filters
	s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < history.MinQueryLength {
		return result.Bundle{}
	}

	bundle := s.match(q, f)
	bundle.Sum()

	s.mu.Lock()
	s.lastQuery = q
	s.last = bundle
	s.mu.Unlock()

	if err := s.history.Record(ctx, q, bundle.Total); err != nil {
		s.logger.Warn("record search history", zap.String("query", q), zap.Error(err))
	}
	return bundle
}

func (s *Service) match(q string, f filter.Filters) result.Bundle {
	var b result.Bundle
	now := s.now()
	loc := strings.ToLower(f.Location)

	if f.Type == filter.TypeAll || f.Type == filter.TypePeople {
		var matched []entity.Person
		for _, p := range s.index.People() {
			if matchPerson(p, q, loc) {
				matched = append(matched, p)
			}
		}
		b.People = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypePosts {
		var matched []entity.Post
		for _, p := range s.index.Posts() {
			if matchPost(p, q, f.DateRange) {
				matched = append(matched, p)
			}
		}
		b.Posts = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypeGroups {
		var matched []entity.Group
		for _, g := range s.index.Groups() {
			if matchGroup(g, q, loc) {
				matched = append(matched, g)
			}
		}
		b.Groups = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypeEvents {
		var matched []entity.Event
		for _, e := range s.index.Events() {
			if matchEvent(e, q, loc) {
				matched = append(matched, e)
			}
		}
		b.Events = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypeMarketplace {
		var matched []entity.MarketplaceItem
		for _, m := range s.index.Marketplace() {
			if matchMarketplace(m, q, loc) {
				matched = append(matched, m)
			}
		}
		b.Marketplace = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypeHashtags {
		var matched []entity.Hashtag
		for _, h := range s.index.Hashtags() {
			if matchHashtag(h, q) {
				matched = append(matched, h)
			}
		}
		b.Hashtags = rank(matched, q, f.SortBy, now)
	}
	if f.Type == filter.TypeAll || f.Type == filter.TypeLocations {
		var matched []entity.Location
		for _, l := range s.index.Locations() {
			if matchLocation(l, q) {
				matched = append(matched, l)
			}
		}
		b.Locations = rank(matched, q, f.SortBy, now)
	}
	return b
}

// SearchByInterests returns people whose interest set intersects the given
// interests, ordered by matched-interest count, then follower count.
func (s *Service) SearchByInterests(interests []string) []entity.Person {
	lowered := make(map[string]struct{}, len(interests))
	for _, i := range interests {
		i = strings.ToLower(strings.TrimSpace(i))
		if i != "" {
			lowered[i] = struct{}{}
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	type scored struct {
		person  entity.Person
		matched int
	}
	var matches []scored
	for _, p := range s.index.People() {
		n := 0
		for _, interest := range p.Interests {
			if _, ok := lowered[strings.ToLower(interest)]; ok {
				n++
			}
		}
		if n > 0 {
			matches = append(matches, scored{person: p, matched: n})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].matched != matches[j].matched {
			return matches[i].matched > matches[j].matched
		}
		return matches[i].person.FollowerCount > matches[j].person.FollowerCount
	})

	out := make([]entity.Person, len(matches))
	for i, m := range matches {
		out[i] = m.person
	}
	return out
}

// SearchByWorkplace returns people whose workplace contains the given text,
// ordered by follower count.
func (s *Service) SearchByWorkplace(workplace string) []entity.Person {
	q := strings.ToLower(strings.TrimSpace(workplace))
	if len([]rune(q)) < history.MinQueryLength {
		return nil
	}

	var matched []entity.Person
	for _, p := range s.index.People() {
		if containsFold(p.Workplace, q) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].FollowerCount > matched[j].FollowerCount
	})
	return matched
}

// CurrentFilters returns the engine's sticky filter state.
func (s *Service) CurrentFilters() filter.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ReplaceFilters swaps the sticky filter state wholesale. Used when a filter
// preset is applied (replace, not merge).
func (s *Service) ReplaceFilters(f filter.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f.Normalize()
}

// CurrentResults returns the last completed query and its bundle.
func (s *Service) CurrentResults() (string, result.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery, s.last
}
