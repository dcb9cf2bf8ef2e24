package search

import (
	"math"
	"testing"
	"time"

	"github.com/connecthub/searchcore/internal/domain/entity"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

func TestTextScore_Stacking(t *testing.T) {
	cases := []struct {
		primary string
		query   string
		want    float64
	}{
		{"Tech", "tech", 175},            // exact + prefix + contains
		{"Technology Group", "tech", 75}, // prefix + contains
		{"FinTech Weekly", "tech", 25},   // contains only
		{"Gardening", "tech", 0},
	}
	for _, c := range cases {
		if got := textScore(c.primary, c.query); got != c.want {
			t.Errorf("textScore(%q, %q) = %v, want %v", c.primary, c.query, got, c.want)
		}
	}
}

func TestPopularityScore(t *testing.T) {
	if got := popularityScore(0); got != 0 {
		t.Errorf("popularityScore(0) = %v, want 0", got)
	}
	if got := popularityScore(-5); got != 0 {
		t.Errorf("popularityScore(-5) = %v, want 0", got)
	}
	want := math.Log(1000) * 2
	if got := popularityScore(1000); math.Abs(got-want) > 1e-9 {
		t.Errorf("popularityScore(1000) = %v, want %v", got, want)
	}
}

func TestRecencyScore(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	if got := recencyScore(now, now); got != 10 {
		t.Errorf("fresh post = %v, want 10", got)
	}
	if got := recencyScore(now.Add(-120*time.Hour), now); got != 5 {
		t.Errorf("five-day-old post = %v, want 5", got)
	}
	if got := recencyScore(now.Add(-100*24*time.Hour), now); got != 0 {
		t.Errorf("ancient post = %v, want floored at 0", got)
	}
}

func TestScore_ExactMatchBeatsPopularity(t *testing.T) {
	now := time.Now()
	// "tech" exact vs a far more popular tag that only prefix-matches.
	exact := entity.Hashtag{Tag: "tech", PostCount: 100}
	prefix := entity.Hashtag{Tag: "technology", PostCount: 1000000}

	if score(exact, "tech", now) <= score(prefix, "tech", now) {
		t.Error("exact-match bonus must dominate the popularity signal")
	}
}

func TestScore_VerifiedAndTrendingBonuses(t *testing.T) {
	now := time.Now()

	plain := entity.Person{DisplayName: "Sam", FollowerCount: 100}
	verified := entity.Person{DisplayName: "Sam", FollowerCount: 100, Verified: true}
	if got := score(verified, "sam", now) - score(plain, "sam", now); got != scoreVerified {
		t.Errorf("verified bonus = %v, want %v", got, scoreVerified)
	}

	cold := entity.Hashtag{Tag: "art", PostCount: 50}
	hot := entity.Hashtag{Tag: "art", PostCount: 50, Trending: true}
	if got := score(hot, "art", now) - score(cold, "art", now); got != scoreTrending {
		t.Errorf("trending bonus = %v, want %v", got, scoreTrending)
	}
}

func TestRank_RelevanceDescending(t *testing.T) {
	now := time.Now()
	tags := []entity.Hashtag{
		{Tag: "fintech", PostCount: 10},
		{Tag: "tech", PostCount: 10},
		{Tag: "technology", PostCount: 10},
	}

	got := rank(tags, "tech", filter.SortRelevance, now)
	if got[0].Tag != "tech" || got[1].Tag != "technology" {
		t.Errorf("order = [%s %s %s], want [tech technology fintech]",
			got[0].Tag, got[1].Tag, got[2].Tag)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tags := []entity.Hashtag{
		{Tag: "fintech"},
		{Tag: "tech"},
	}
	rank(tags, "tech", filter.SortRelevance, now)
	if tags[0].Tag != "fintech" {
		t.Error("rank must sort a copy, not the caller's slice")
	}
}

func TestRank_StableOnTies(t *testing.T) {
	now := time.Now()
	people := []entity.Person{
		{ID: "a", DisplayName: "Jordan", FollowerCount: 100},
		{ID: "b", DisplayName: "Jordan", FollowerCount: 100},
	}
	got := rank(people, "jordan", filter.SortRelevance, now)
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Error("tied scores must keep encounter order")
	}
}

func TestRank_RecentFallsBackForTimelessKinds(t *testing.T) {
	now := time.Now()
	// Hashtags have no timestamp; recent sort should still produce a
	// deterministic relevance ordering.
	tags := []entity.Hashtag{
		{Tag: "fintech"},
		{Tag: "tech"},
	}
	got := rank(tags, "tech", filter.SortRecent, now)
	if got[0].Tag != "tech" {
		t.Errorf("first = %s, want tech", got[0].Tag)
	}
}

func TestPopularityOf(t *testing.T) {
	cases := []struct {
		e    entity.Entity
		want int
	}{
		{entity.Person{FollowerCount: 1}, 1},
		{entity.Post{LikeCount: 2}, 2},
		{entity.Group{MemberCount: 3}, 3},
		{entity.Event{AttendeeCount: 4}, 4},
		{entity.Hashtag{PostCount: 5}, 5},
		{entity.Location{Population: 6}, 6},
		{entity.MarketplaceItem{}, 0},
	}
	for _, c := range cases {
		if got := popularityOf(c.e); got != c.want {
			t.Errorf("popularityOf(%T) = %d, want %d", c.e, got, c.want)
		}
	}
}
