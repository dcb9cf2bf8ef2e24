// Package insights derives search analytics from history and the index.
//
// Everything here is a pure read: computed on demand, no caching, no
// mutation of the underlying stores.
package insights

import (
	"fmt"
	"sort"
	"strings"

	domhist "github.com/connecthub/searchcore/internal/domain/history"
)

const (
	popularLimit     = 5
	recommendedLimit = 5
	recentConsulted  = 5
	peakHoursLimit   = 3
)

// Patterns summarizes temporal search behavior. An empty history yields the
// defined empty shape rather than an error.
type Patterns struct {
	MostActiveDay         string  `json:"most_active_day"`
	AverageSearchesPerDay float64 `json:"average_searches_per_day"`
	TotalDays             int     `json:"total_days"`
}

// QueryCount pairs a query with its frequency in history.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// HourCount pairs an hour of day (0-23) with its search count.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// CategoryCount pairs a query category with its frequency.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Recommendation is an actionable suggestion. Action is a symbolic
// identifier interpreted by the caller, never executed here.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Bundle is the full insights report.
type Bundle struct {
	PopularSearches     []QueryCount     `json:"popular_searches"`
	RecommendedSearches []string         `json:"recommended_searches"`
	Patterns            Patterns         `json:"patterns"`
	PeakHours           []HourCount      `json:"peak_hours"`
	Categories          []CategoryCount  `json:"categories"`
	Recommendations     []Recommendation `json:"recommendations"`
}

// relatedTerms maps query keywords to related search terms for the
// recommendation feed. Slice order is the order terms enter the feed when a
// query matches several keywords.
var relatedTerms = []struct {
	keyword string
	terms   []string
}{
	{"photography", []string{"camera gear", "photo editing", "photography tips"}},
	{"travel", []string{"travel deals", "packing tips", "travel photography"}},
	{"coffee", []string{"coffee shops near me", "espresso recipes", "latte art"}},
	{"tech", []string{"tech meetups", "programming", "startup news"}},
	{"fitness", []string{"workout plans", "running clubs", "nutrition"}},
	{"music", []string{"live music", "concerts near me", "new releases"}},
	{"art", []string{"art galleries", "drawing tutorials", "street art"}},
	{"food", []string{"restaurants near me", "recipes", "food festivals"}},
}

// categoryKeywords classifies queries; the first matching category wins and
// "other" is the fallback.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"person", []string{"@", "people", "friend", "user", "profile"}},
	{"post", []string{"post", "photo", "video", "story", "reel"}},
	{"group", []string{"group", "community", "club", "members"}},
	{"event", []string{"event", "concert", "festival", "meetup", "party"}},
	{"marketplace", []string{"buy", "sell", "sale", "price", "marketplace"}},
	{"location", []string{"near", "city", "restaurant", "cafe", "park"}},
}

// Service assembles the insights report.
type Service struct {
	history HistoryReader
	saved   SavedReader
	index   Index
}

// New creates an insights service.
func New(history HistoryReader, saved SavedReader, index Index) *Service {
	return &Service{history: history, saved: saved, index: index}
}

// Insights computes the full report from the current history and index.
func (s *Service) Insights() Bundle {
	entries := s.history.All()

	return Bundle{
		PopularSearches:     s.popularSearches(entries),
		RecommendedSearches: s.recommendedSearches(entries),
		Patterns:            s.patterns(entries),
		PeakHours:           s.peakHours(entries),
		Categories:          s.categories(entries),
		Recommendations:     s.recommendations(entries),
	}
}

// popularSearches returns the top queries by frequency. History is
// deduplicated by query, so ties resolve to the most recent entry first
// (entries arrive newest first).
func (s *Service) popularSearches(entries []domhist.Entry) []QueryCount {
	counts := make(map[string]int)
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, seen := counts[e.Query]; !seen {
			order = append(order, e.Query)
		}
		counts[e.Query]++
	}

	out := make([]QueryCount, 0, len(order))
	for _, q := range order {
		out = append(out, QueryCount{Query: q, Count: counts[q]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > popularLimit {
		out = out[:popularLimit]
	}
	return out
}

// recommendedSearches looks up the most recent queries against the related
// terms table, deduplicated and capped.
func (s *Service) recommendedSearches(entries []domhist.Entry) []string {
	recent := entries
	if len(recent) > recentConsulted {
		recent = recent[:recentConsulted]
	}

	seen := make(map[string]struct{})
	var out []string
	for _, e := range recent {
		for _, r := range relatedTerms {
			if !strings.Contains(e.Query, r.keyword) {
				continue
			}
			for _, t := range r.terms {
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				out = append(out, t)
				if len(out) == recommendedLimit {
					return out
				}
			}
		}
	}
	return out
}

// patterns groups history by calendar day.
func (s *Service) patterns(entries []domhist.Entry) Patterns {
	if len(entries) == 0 {
		return Patterns{MostActiveDay: "N/A"}
	}

	perDay := make(map[string]int)
	for _, e := range entries {
		perDay[e.Timestamp.Format("2006-01-02")]++
	}

	var topDay string
	var topCount int
	for day, count := range perDay {
		if count > topCount || (count == topCount && day > topDay) {
			topDay = day
			topCount = count
		}
	}

	return Patterns{
		MostActiveDay:         topDay,
		AverageSearchesPerDay: float64(len(entries)) / float64(len(perDay)),
		TotalDays:             len(perDay),
	}
}

// peakHours returns the top hours of day by search count, earlier hours
// first on ties.
func (s *Service) peakHours(entries []domhist.Entry) []HourCount {
	var perHour [24]int
	for _, e := range entries {
		perHour[e.Timestamp.Hour()]++
	}

	var out []HourCount
	for h, c := range perHour {
		if c > 0 {
			out = append(out, HourCount{Hour: h, Count: c})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > peakHoursLimit {
		out = out[:peakHoursLimit]
	}
	return out
}

// categories classifies each history query via keyword heuristics and
// returns non-zero categories descending by count.
func (s *Service) categories(entries []domhist.Entry) []CategoryCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[classify(e.Query)]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for _, c := range categoryOrder() {
		if counts[c] > 0 {
			out = append(out, CategoryCount{Category: c, Count: counts[c]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func classify(query string) string {
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(query, kw) {
				return c.category
			}
		}
	}
	return "other"
}

func categoryOrder() []string {
	out := make([]string, 0, len(categoryKeywords)+1)
	for _, c := range categoryKeywords {
		out = append(out, c.category)
	}
	return append(out, "other")
}

// recommendations assembles actionable suggestions from the saved stores,
// trending activity, and the index.
func (s *Service) recommendations(entries []domhist.Entry) []Recommendation {
	var out []Recommendation

	if n := len(s.saved.Searches()); n > 0 {
		out = append(out, Recommendation{
			Type:    "saved_searches",
			Message: fmt.Sprintf("You have %d saved searches ready to revisit", n),
			Action:  "view_saved_searches",
		})
	}

	if top := s.topTrendingQuery(entries); top != "" {
		out = append(out, Recommendation{
			Type:    "trending",
			Message: fmt.Sprintf("%q is trending right now", top),
			Action:  "search_trending",
		})
	}

	verified := 0
	for _, p := range s.index.People() {
		if p.Verified {
			verified++
		}
	}
	if verified > 0 {
		out = append(out, Recommendation{
			Type:    "verified",
			Message: fmt.Sprintf("%d verified people are in your network index", verified),
			Action:  "filter_verified",
		})
	}

	if len(s.saved.Presets()) == 0 {
		out = append(out, Recommendation{
			Type:    "preset",
			Message: "Create a filter preset to reuse your favorite search setup",
			Action:  "create_preset",
		})
	}
	return out
}

// topTrendingQuery returns the most recent history query that mentions a
// trending hashtag, or "" when none do.
func (s *Service) topTrendingQuery(entries []domhist.Entry) string {
	var trending []string
	for _, h := range s.index.Hashtags() {
		if h.Trending {
			trending = append(trending, strings.ToLower(h.Tag))
		}
	}
	for _, e := range entries {
		for _, tag := range trending {
			if strings.Contains(e.Query, tag) {
				return e.Query
			}
		}
	}
	return ""
}
