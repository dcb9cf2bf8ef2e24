package filter

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	f := Default()
	if f.Type != TypeAll {
		t.Errorf("type = %q, want %q", f.Type, TypeAll)
	}
	if f.SortBy != SortRelevance {
		t.Errorf("sort = %q, want %q", f.SortBy, SortRelevance)
	}
	if f.RadiusKm != DefaultRadiusKm {
		t.Errorf("radius = %d, want %d", f.RadiusKm, DefaultRadiusKm)
	}
	if f.Location != "" || f.DateRange != nil {
		t.Errorf("unexpected location/date range in default filters: %+v", f)
	}
}

func TestMerge_SetFieldsOverride(t *testing.T) {
	f := Default()

	people := TypePeople
	loc := "New York"
	f = f.Merge(Update{Type: &people, Location: &loc})

	if f.Type != TypePeople {
		t.Errorf("type = %q, want %q", f.Type, TypePeople)
	}
	if f.Location != "New York" {
		t.Errorf("location = %q, want %q", f.Location, "New York")
	}
	// Unset fields keep their prior value.
	if f.SortBy != SortRelevance {
		t.Errorf("sort = %q, want %q", f.SortBy, SortRelevance)
	}
	if f.RadiusKm != DefaultRadiusKm {
		t.Errorf("radius = %d, want %d", f.RadiusKm, DefaultRadiusKm)
	}
}

func TestMerge_IsSticky(t *testing.T) {
	f := Default()

	posts := TypePosts
	f = f.Merge(Update{Type: &posts})

	// A later merge with no fields set changes nothing.
	f = f.Merge(Update{})
	if f.Type != TypePosts {
		t.Errorf("type = %q, want %q after empty merge", f.Type, TypePosts)
	}

	recent := SortRecent
	f = f.Merge(Update{SortBy: &recent})
	if f.Type != TypePosts {
		t.Errorf("type = %q, want %q after unrelated merge", f.Type, TypePosts)
	}
	if f.SortBy != SortRecent {
		t.Errorf("sort = %q, want %q", f.SortBy, SortRecent)
	}
}

func TestMerge_EmptyLocationClears(t *testing.T) {
	f := Default()
	loc := "Brooklyn"
	f = f.Merge(Update{Location: &loc})

	empty := ""
	f = f.Merge(Update{Location: &empty})
	if f.Location != "" {
		t.Errorf("location = %q, want cleared", f.Location)
	}
}

func TestNormalize_RedefaultsInvalid(t *testing.T) {
	f := Filters{Type: "bogus", SortBy: "nope", RadiusKm: -5}
	f = f.Normalize()

	if f.Type != TypeAll {
		t.Errorf("type = %q, want %q", f.Type, TypeAll)
	}
	if f.SortBy != SortRelevance {
		t.Errorf("sort = %q, want %q", f.SortBy, SortRelevance)
	}
	if f.RadiusKm != DefaultRadiusKm {
		t.Errorf("radius = %d, want %d", f.RadiusKm, DefaultRadiusKm)
	}
}

func TestNormalize_KeepsValid(t *testing.T) {
	f := Filters{Type: TypeEvents, SortBy: SortPopular, RadiusKm: 100}
	f = f.Normalize()

	if f.Type != TypeEvents || f.SortBy != SortPopular || f.RadiusKm != 100 {
		t.Errorf("valid filters were altered: %+v", f)
	}
}

func TestDateRange_Contains(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	dr := DateRange{Start: start, End: end}

	if !dr.Contains(start) {
		t.Error("start boundary should be included")
	}
	if !dr.Contains(end) {
		t.Error("end boundary should be included")
	}
	if !dr.Contains(start.Add(12 * time.Hour)) {
		t.Error("interior timestamp should be included")
	}
	if dr.Contains(start.Add(-time.Second)) {
		t.Error("timestamp before start should be excluded")
	}
	if dr.Contains(end.Add(time.Second)) {
		t.Error("timestamp after end should be excluded")
	}
}

func TestDateRange_OpenEnds(t *testing.T) {
	t0 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	onlyStart := DateRange{Start: t0}
	if !onlyStart.Contains(t0.Add(time.Hour * 24 * 365)) {
		t.Error("open end should admit any later timestamp")
	}
	onlyEnd := DateRange{End: t0}
	if !onlyEnd.Contains(t0.Add(-time.Hour * 24 * 365)) {
		t.Error("open start should admit any earlier timestamp")
	}
}
