package insights

import (
	"testing"
	"time"

	"github.com/connecthub/searchcore/internal/domain/entity"
	domhist "github.com/connecthub/searchcore/internal/domain/history"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
)

// --- Mocks ---

type mockHistory struct {
	entries []domhist.Entry
}

func (m *mockHistory) All() []domhist.Entry { return m.entries }

type mockSaved struct {
	searches []domsaved.Search
	presets  []domsaved.Preset
}

func (m *mockSaved) Searches() []domsaved.Search { return m.searches }
func (m *mockSaved) Presets() []domsaved.Preset  { return m.presets }

type mockIndex struct {
	people   []entity.Person
	hashtags []entity.Hashtag
}

func (m *mockIndex) People() []entity.Person    { return m.people }
func (m *mockIndex) Hashtags() []entity.Hashtag { return m.hashtags }

var day = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func at(dayOffset, hour int) time.Time {
	return day.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
}

func entry(q string, ts time.Time) domhist.Entry {
	return domhist.Entry{Query: q, Timestamp: ts}
}

func newTestService(h *mockHistory, s *mockSaved, i *mockIndex) *Service {
	if h == nil {
		h = &mockHistory{}
	}
	if s == nil {
		s = &mockSaved{}
	}
	if i == nil {
		i = &mockIndex{}
	}
	return New(h, s, i)
}

func TestInsights_EmptyHistory(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	b := svc.Insights()
	if len(b.PopularSearches) != 0 {
		t.Errorf("popular = %+v, want empty", b.PopularSearches)
	}
	if b.Patterns.MostActiveDay != "N/A" {
		t.Errorf("most active day = %q, want N/A", b.Patterns.MostActiveDay)
	}
	if b.Patterns.AverageSearchesPerDay != 0 || b.Patterns.TotalDays != 0 {
		t.Errorf("patterns = %+v, want zeroed", b.Patterns)
	}
	if len(b.PeakHours) != 0 {
		t.Errorf("peak hours = %+v, want empty", b.PeakHours)
	}
}

func TestPopularSearches_FrequencyThenRecency(t *testing.T) {
	// Entries arrive newest first, mimicking the history list.
	h := &mockHistory{entries: []domhist.Entry{
		entry("coffee", at(2, 10)),
		entry("tech", at(2, 9)),
		entry("coffee", at(1, 10)),
		entry("art", at(1, 9)),
		entry("coffee", at(0, 10)),
		entry("tech", at(0, 9)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.popularSearches(h.entries)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Query != "coffee" || got[0].Count != 3 {
		t.Errorf("first = %+v, want coffee/3", got[0])
	}
	if got[1].Query != "tech" || got[1].Count != 2 {
		t.Errorf("second = %+v, want tech/2", got[1])
	}
}

func TestPopularSearches_Limit(t *testing.T) {
	var entries []domhist.Entry
	for _, q := range []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"} {
		entries = append(entries, entry(q, at(0, 10)))
	}
	svc := newTestService(nil, nil, nil)

	if got := svc.popularSearches(entries); len(got) != popularLimit {
		t.Errorf("len = %d, want capped at %d", len(got), popularLimit)
	}
}

func TestRecommendedSearches(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("coffee shops", at(0, 10)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.recommendedSearches(h.entries)
	if len(got) != 3 {
		t.Fatalf("len = %d, want the three coffee-related terms, got %v", len(got), got)
	}
	seen := map[string]bool{}
	for _, term := range got {
		if seen[term] {
			t.Errorf("duplicate recommendation %q", term)
		}
		seen[term] = true
	}
}

func TestRecommendedSearches_CapAndDedup(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("coffee", at(0, 10)),
		entry("coffee art", at(0, 11)),
		entry("tech travel", at(0, 12)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.recommendedSearches(h.entries)
	if len(got) > recommendedLimit {
		t.Errorf("len = %d, want at most %d", len(got), recommendedLimit)
	}
}

func TestRecommendedSearches_MultiKeywordTableOrder(t *testing.T) {
	// Matches both the photography and travel rows; terms must enter the
	// feed in table order every run.
	h := &mockHistory{entries: []domhist.Entry{
		entry("travel photography", at(0, 10)),
	}}
	svc := newTestService(h, nil, nil)

	want := []string{"camera gear", "photo editing", "photography tips", "travel deals", "packing tips"}
	got := svc.recommendedSearches(h.entries)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPatterns(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("a1", at(0, 9)),
		entry("a2", at(0, 10)),
		entry("a3", at(0, 11)),
		entry("b1", at(1, 9)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.patterns(h.entries)
	if got.MostActiveDay != "2025-07-01" {
		t.Errorf("most active day = %q, want 2025-07-01", got.MostActiveDay)
	}
	if got.TotalDays != 2 {
		t.Errorf("total days = %d, want 2", got.TotalDays)
	}
	if got.AverageSearchesPerDay != 2 {
		t.Errorf("average = %v, want 2", got.AverageSearchesPerDay)
	}
}

func TestPeakHours(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("a", at(0, 9)),
		entry("b", at(0, 9)),
		entry("c", at(0, 9)),
		entry("d", at(0, 14)),
		entry("e", at(0, 14)),
		entry("f", at(0, 20)),
		entry("g", at(0, 21)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.peakHours(h.entries)
	if len(got) != peakHoursLimit {
		t.Fatalf("len = %d, want %d", len(got), peakHoursLimit)
	}
	if got[0].Hour != 9 || got[0].Count != 3 {
		t.Errorf("first = %+v, want hour 9 with 3", got[0])
	}
	if got[1].Hour != 14 || got[1].Count != 2 {
		t.Errorf("second = %+v, want hour 14 with 2", got[1])
	}
	// Tie between hours 20 and 21 resolves to the earlier hour.
	if got[2].Hour != 20 {
		t.Errorf("third = %+v, want hour 20 on tie", got[2])
	}
}

func TestCategories(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("@sarahjohnson", at(0, 9)),
		entry("photo walk", at(0, 10)),
		entry("jazz concert", at(0, 11)),
		entry("quantum chromodynamics", at(0, 12)),
		entry("profile pictures", at(0, 13)),
	}}
	svc := newTestService(h, nil, nil)

	got := svc.categories(h.entries)
	counts := map[string]int{}
	for _, c := range got {
		counts[c.Category] = c.Count
	}
	if counts["person"] != 2 {
		t.Errorf("person = %d, want 2 (@handle and profile)", counts["person"])
	}
	if counts["post"] != 1 {
		t.Errorf("post = %d, want 1", counts["post"])
	}
	if counts["event"] != 1 {
		t.Errorf("event = %d, want 1", counts["event"])
	}
	if counts["other"] != 1 {
		t.Errorf("other = %d, want 1", counts["other"])
	}
	// Highest counts first.
	if got[0].Category != "person" {
		t.Errorf("first = %+v, want person", got[0])
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// "concert near me" mentions both event and location keywords; the
	// event category is checked first.
	if got := classify("concert near me"); got != "event" {
		t.Errorf("classify = %q, want event", got)
	}
	if got := classify("zzz"); got != "other" {
		t.Errorf("classify = %q, want other", got)
	}
}

func TestRecommendations(t *testing.T) {
	h := &mockHistory{entries: []domhist.Entry{
		entry("tech news", at(0, 9)),
	}}
	s := &mockSaved{searches: []domsaved.Search{{ID: "s1"}}}
	i := &mockIndex{
		people:   []entity.Person{{ID: "u1", Verified: true}, {ID: "u2"}},
		hashtags: []entity.Hashtag{{Tag: "tech", Trending: true}},
	}
	svc := newTestService(h, s, i)

	got := svc.recommendations(h.entries)
	actions := map[string]bool{}
	for _, r := range got {
		actions[r.Action] = true
	}
	for _, want := range []string{
		"view_saved_searches", "search_trending", "filter_verified", "create_preset",
	} {
		if !actions[want] {
			t.Errorf("missing recommendation action %q in %+v", want, got)
		}
	}
}

func TestRecommendations_SkipsWhenNotApplicable(t *testing.T) {
	s := &mockSaved{presets: []domsaved.Preset{{ID: "p1"}}}
	svc := newTestService(&mockHistory{}, s, &mockIndex{})

	got := svc.recommendations(nil)
	for _, r := range got {
		if r.Action == "view_saved_searches" {
			t.Error("no saved searches, recommendation should be absent")
		}
		if r.Action == "create_preset" {
			t.Error("preset exists, recommendation should be absent")
		}
	}
}
