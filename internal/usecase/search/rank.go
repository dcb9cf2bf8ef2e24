package search

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

// Relevance score weights. Scores are additive per candidate and only
// comparable within a single result set.
const (
	scoreExact    = 100.0
	scorePrefix   = 50.0
	scoreContains = 25.0
	scoreVerified = 20.0
	scoreTrending = 30.0
)

// textScore scores the primary text field against the lower-cased query.
// An exact match also satisfies the prefix and contains checks, so the
// bonuses stack: exact 175, prefix 75, bare substring 25.
func textScore(primary, loweredQuery string) float64 {
	lp := strings.ToLower(primary)
	var s float64
	if lp == loweredQuery {
		s += scoreExact
	}
	if strings.HasPrefix(lp, loweredQuery) {
		s += scorePrefix
	}
	if strings.Contains(lp, loweredQuery) {
		s += scoreContains
	}
	return s
}

// popularityScore contributes ln(popularity)*2; zero or negative counts
// contribute nothing.
func popularityScore(count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Log(float64(count)) * 2
}

// recencyScore decays linearly from 10 over roughly ten days to zero,
// floored at zero.
func recencyScore(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	return math.Max(0, 10-hours/24)
}

// score computes the relevance score for one candidate. The type switch
// selects the primary text field and the popularity signal per variant.
func score(e entity.Entity, loweredQuery string, now time.Time) float64 {
	switch v := e.(type) {
	case entity.Person:
		s := textScore(v.DisplayName, loweredQuery) + popularityScore(v.FollowerCount)
		if v.Verified {
			s += scoreVerified
		}
		return s
	case entity.Post:
		return textScore(v.Text, loweredQuery) +
			popularityScore(v.LikeCount) +
			recencyScore(v.CreatedAt, now)
	case entity.Group:
		return textScore(v.Name, loweredQuery) + popularityScore(v.MemberCount)
	case entity.Event:
		return textScore(v.Name, loweredQuery) + popularityScore(v.AttendeeCount)
	case entity.MarketplaceItem:
		return textScore(v.Title, loweredQuery)
	case entity.Hashtag:
		s := textScore(v.Tag, loweredQuery) + popularityScore(v.PostCount)
		if v.Trending {
			s += scoreTrending
		}
		return s
	case entity.Location:
		return textScore(v.Name, loweredQuery) + popularityScore(v.Population)
	default:
		return 0
	}
}

// rank orders candidates per the active sort strategy. Relevance recomputes
// scores fresh on every call (recency is time-dependent) and requires a
// stable sort so ties keep encounter order.
func rank[T entity.Entity](candidates []T, loweredQuery string, sortBy filter.Sort, now time.Time) []T {
	out := make([]T, len(candidates))
	copy(out, candidates)

	switch sortBy {
	case filter.SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			ti, iok := timestampOf(out[i])
			tj, jok := timestampOf(out[j])
			if iok && jok {
				return ti.After(tj)
			}
			// Collections without timestamps fall back to relevance order.
			return score(out[i], loweredQuery, now) > score(out[j], loweredQuery, now)
		})
	case filter.SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return popularityOf(out[i]) > popularityOf(out[j])
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return score(out[i], loweredQuery, now) > score(out[j], loweredQuery, now)
		})
	}
	return out
}

func timestampOf(e entity.Entity) (time.Time, bool) {
	switch v := e.(type) {
	case entity.Post:
		return v.CreatedAt, true
	case entity.Event:
		return v.Date, true
	default:
		return time.Time{}, false
	}
}

func popularityOf(e entity.Entity) int {
	switch v := e.(type) {
	case entity.Person:
		return v.FollowerCount
	case entity.Post:
		return v.LikeCount
	case entity.Group:
		return v.MemberCount
	case entity.Event:
		return v.AttendeeCount
	case entity.Hashtag:
		return v.PostCount
	case entity.Location:
		return v.Population
	default:
		return 0
	}
}
