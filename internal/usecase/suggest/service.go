// Package suggest implements memoized autocomplete over the index.
package suggest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/history"
	domsuggest "github.com/connecthub/searchcore/internal/domain/suggest"
)

// Limit is the maximum number of suggestions returned per query.
const Limit = 10

// Index is the read contract over the collections autocomplete scans.
type Index interface {
	People() []entity.Person
	Hashtags() []entity.Hashtag
	Groups() []entity.Group
	Events() []entity.Event
	Locations() []entity.Location
}

// Service produces autocomplete suggestions with a process-lifetime memo
// cache. The cache is never invalidated: the index is immutable, so a cached
// answer stays correct. A mutable index would need invalidation here.
type Service struct {
	index Index

	mu    sync.Mutex
	cache map[string][]domsuggest.Suggestion

	cacheMetric *prometheus.CounterVec
}

// New creates a suggestion service. cacheMetric may be nil.
func New(index Index, cacheMetric *prometheus.CounterVec) *Service {
	return &Service{
		index:       index,
		cache:       make(map[string][]domsuggest.Suggestion),
		cacheMetric: cacheMetric,
	}
}

// Suggest returns up to Limit suggestions for the query, in fixed scan order
// (people, hashtags, groups, events, locations) rather than score order.
// Queries shorter than two runes yield nothing.
func (s *Service) Suggest(query string) []domsuggest.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < history.MinQueryLength {
		return nil
	}

	s.mu.Lock()
	if cached, ok := s.cache[q]; ok {
		s.mu.Unlock()
		s.count("hit")
		return cached
	}
	s.mu.Unlock()
	s.count("miss")

	out := s.scan(q)

	s.mu.Lock()
	s.cache[q] = out
	s.mu.Unlock()
	return out
}

func (s *Service) scan(q string) []domsuggest.Suggestion {
	out := make([]domsuggest.Suggestion, 0, Limit)

	add := func(sg domsuggest.Suggestion) bool {
		out = append(out, sg)
		return len(out) < Limit
	}

	for _, p := range s.index.People() {
		if strings.Contains(strings.ToLower(p.DisplayName), q) ||
			strings.Contains(strings.ToLower(p.Handle), q) {
			if !add(domsuggest.Suggestion{
				Kind:        entity.KindPerson,
				DisplayText: p.DisplayName,
				Subtext:     p.Handle,
				Icon:        "👤",
				SourceID:    p.ID,
			}) {
				return out
			}
		}
	}
	for _, h := range s.index.Hashtags() {
		if strings.Contains(strings.ToLower(h.Tag), q) {
			if !add(domsuggest.Suggestion{
				Kind:        entity.KindHashtag,
				DisplayText: "#" + h.Tag,
				Subtext:     fmt.Sprintf("%d posts", h.PostCount),
				Icon:        "#️⃣",
				SourceID:    h.Tag,
			}) {
				return out
			}
		}
	}
	for _, g := range s.index.Groups() {
		if strings.Contains(strings.ToLower(g.Name), q) {
			if !add(domsuggest.Suggestion{
				Kind:        entity.KindGroup,
				DisplayText: g.Name,
				Subtext:     fmt.Sprintf("%d members", g.MemberCount),
				Icon:        "👥",
				SourceID:    g.ID,
			}) {
				return out
			}
		}
	}
	for _, e := range s.index.Events() {
		if strings.Contains(strings.ToLower(e.Name), q) {
			if !add(domsuggest.Suggestion{
				Kind:        entity.KindEvent,
				DisplayText: e.Name,
				Subtext:     e.LocationText,
				Icon:        "📅",
				SourceID:    e.ID,
			}) {
				return out
			}
		}
	}
	for _, l := range s.index.Locations() {
		if strings.Contains(strings.ToLower(l.Name), q) {
			if !add(domsuggest.Suggestion{
				Kind:        entity.KindLocation,
				DisplayText: l.Name,
				Subtext:     l.Country,
				Icon:        "📍",
				SourceID:    l.ID,
			}) {
				return out
			}
		}
	}
	return out
}

func (s *Service) count(result string) {
	if s.cacheMetric != nil {
		s.cacheMetric.WithLabelValues(result).Inc()
	}
}
