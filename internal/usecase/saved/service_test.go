package saved

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/connecthub/searchcore/internal/domain"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

// --- Mocks ---

type mockRepo struct {
	searches []domsaved.Search
	presets  []domsaved.Preset

	savedSearches [][]domsaved.Search
	savedPresets  [][]domsaved.Preset
	saveErr       error
}

func (m *mockRepo) LoadSearches(_ context.Context) []domsaved.Search { return m.searches }
func (m *mockRepo) LoadPresets(_ context.Context) []domsaved.Preset  { return m.presets }

func (m *mockRepo) SaveSearches(_ context.Context, s []domsaved.Search) error {
	m.savedSearches = append(m.savedSearches, s)
	return m.saveErr
}

func (m *mockRepo) SavePresets(_ context.Context, p []domsaved.Preset) error {
	m.savedPresets = append(m.savedPresets, p)
	return m.saveErr
}

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *mockRepo) *Service {
	return New(context.Background(), repo).WithClock(func() time.Time { return testNow })
}

func peopleFilters() filter.Filters {
	return filter.Filters{Type: filter.TypePeople, SortBy: filter.SortRelevance, RadiusKm: 25}
}

func TestSaveSearch(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	sv, err := svc.SaveSearch(context.Background(), "  coffee shops ", peopleFilters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sv.ID == "" {
		t.Error("saved search must get an id")
	}
	if sv.Query != "coffee shops" {
		t.Errorf("query = %q, want trimmed", sv.Query)
	}
	if sv.NotificationsEnabled {
		t.Error("notifications must default to off")
	}
	if !sv.CreatedAt.Equal(testNow) {
		t.Errorf("created at = %v, want clock time", sv.CreatedAt)
	}
	if len(repo.savedSearches) != 1 {
		t.Fatalf("persisted %d times, want 1", len(repo.savedSearches))
	}
}

func TestSaveSearch_DistinctIDs(t *testing.T) {
	svc := newTestService(&mockRepo{})

	a, _ := svc.SaveSearch(context.Background(), "coffee", peopleFilters())
	b, _ := svc.SaveSearch(context.Background(), "coffee", peopleFilters())
	if a.ID == b.ID {
		t.Error("two saves of the same query must get distinct ids")
	}
	if len(svc.Searches()) != 2 {
		t.Errorf("len = %d, want 2", len(svc.Searches()))
	}
}

func TestToggleNotifications(t *testing.T) {
	svc := newTestService(&mockRepo{})
	sv, _ := svc.SaveSearch(context.Background(), "coffee", peopleFilters())

	on, err := svc.ToggleNotifications(context.Background(), sv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !on.NotificationsEnabled {
		t.Error("first toggle should enable notifications")
	}

	off, err := svc.ToggleNotifications(context.Background(), sv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off.NotificationsEnabled {
		t.Error("second toggle should disable notifications")
	}
}

func TestToggleNotifications_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{})

	_, err := svc.ToggleNotifications(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSavedSearchNotFound) {
		t.Errorf("err = %v, want ErrSavedSearchNotFound", err)
	}
}

func TestDeleteSearch(t *testing.T) {
	svc := newTestService(&mockRepo{})
	sv, _ := svc.SaveSearch(context.Background(), "coffee", peopleFilters())

	if err := svc.DeleteSearch(context.Background(), sv.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(svc.Searches()) != 0 {
		t.Error("search not removed")
	}
	if err := svc.DeleteSearch(context.Background(), sv.ID); !errors.Is(err, domain.ErrSavedSearchNotFound) {
		t.Errorf("err = %v, want ErrSavedSearchNotFound", err)
	}
}

func TestSavePreset(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	f := peopleFilters()
	p, err := svc.SavePreset(context.Background(), " Daily people ", f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Daily people" {
		t.Errorf("name = %q, want trimmed", p.Name)
	}
	if !reflect.DeepEqual(p.Filters, f) {
		t.Errorf("filters = %+v, want snapshot %+v", p.Filters, f)
	}
	if len(repo.savedPresets) != 1 {
		t.Fatalf("persisted %d times, want 1", len(repo.savedPresets))
	}
}

func TestSavePreset_EmptyName(t *testing.T) {
	svc := newTestService(&mockRepo{})

	_, err := svc.SavePreset(context.Background(), "   ", peopleFilters())
	if !errors.Is(err, domain.ErrEmptyPresetName) {
		t.Errorf("err = %v, want ErrEmptyPresetName", err)
	}
}

func TestPreset_RoundTrip(t *testing.T) {
	svc := newTestService(&mockRepo{})

	f := peopleFilters()
	f.Location = "Brooklyn"
	created, _ := svc.SavePreset(context.Background(), "brooklyn people", f)

	got, err := svc.Preset(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("preset = %+v, want %+v", got, created)
	}

	if _, err := svc.Preset("missing"); !errors.Is(err, domain.ErrPresetNotFound) {
		t.Errorf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestUpdatePreset(t *testing.T) {
	svc := newTestService(&mockRepo{})
	created, _ := svc.SavePreset(context.Background(), "p", peopleFilters())

	updated := filter.Filters{Type: filter.TypeEvents, SortBy: filter.SortRecent, RadiusKm: 50}
	got, err := svc.UpdatePreset(context.Background(), created.ID, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Filters, updated) {
		t.Errorf("filters = %+v, want %+v", got.Filters, updated)
	}
	if got.Name != "p" {
		t.Errorf("name = %q, update must not rename", got.Name)
	}

	if _, err := svc.UpdatePreset(context.Background(), "missing", updated); !errors.Is(err, domain.ErrPresetNotFound) {
		t.Errorf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestRenamePreset(t *testing.T) {
	svc := newTestService(&mockRepo{})
	created, _ := svc.SavePreset(context.Background(), "old", peopleFilters())

	got, err := svc.RenamePreset(context.Background(), created.ID, "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "new" {
		t.Errorf("name = %q, want new", got.Name)
	}

	if _, err := svc.RenamePreset(context.Background(), created.ID, " "); !errors.Is(err, domain.ErrEmptyPresetName) {
		t.Errorf("err = %v, want ErrEmptyPresetName", err)
	}
}

func TestDeletePreset(t *testing.T) {
	svc := newTestService(&mockRepo{})
	created, _ := svc.SavePreset(context.Background(), "p", peopleFilters())

	if err := svc.DeletePreset(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(svc.Presets()) != 0 {
		t.Error("preset not removed")
	}
	if err := svc.DeletePreset(context.Background(), created.ID); !errors.Is(err, domain.ErrPresetNotFound) {
		t.Errorf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestNew_Rehydrates(t *testing.T) {
	repo := &mockRepo{
		searches: []domsaved.Search{{ID: "s1", Query: "coffee"}},
		presets:  []domsaved.Preset{{ID: "p1", Name: "people"}},
	}
	svc := newTestService(repo)

	if len(svc.Searches()) != 1 || svc.Searches()[0].ID != "s1" {
		t.Errorf("searches = %+v, want rehydrated s1", svc.Searches())
	}
	if len(svc.Presets()) != 1 || svc.Presets()[0].ID != "p1" {
		t.Errorf("presets = %+v, want rehydrated p1", svc.Presets())
	}
}
