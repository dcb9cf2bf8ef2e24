package saved

import (
	"context"
	"reflect"
	"testing"
	"time"

	dbMemory "github.com/connecthub/searchcore/internal/db/memory"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

func TestSearches_RoundTrip(t *testing.T) {
	store := New(dbMemory.NewStore(), "test:", nil)
	ctx := context.Background()

	want := []domsaved.Search{
		{
			ID:    "s1",
			Query: "coffee",
			Filters: filter.Filters{
				Type: filter.TypePeople, SortBy: filter.SortRelevance, RadiusKm: 25,
			},
			CreatedAt:            time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
			NotificationsEnabled: true,
		},
	}

	if err := store.SaveSearches(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := store.LoadSearches(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestPresets_RoundTrip(t *testing.T) {
	store := New(dbMemory.NewStore(), "test:", nil)
	ctx := context.Background()

	dr := &filter.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	want := []domsaved.Preset{
		{
			ID:   "p1",
			Name: "june posts",
			Filters: filter.Filters{
				Type: filter.TypePosts, DateRange: dr,
				SortBy: filter.SortRecent, RadiusKm: 25,
			},
			CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	if err := store.SavePresets(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := store.LoadPresets(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoad_MissingKeysYieldEmpty(t *testing.T) {
	store := New(dbMemory.NewStore(), "test:", nil)
	ctx := context.Background()

	if got := store.LoadSearches(ctx); len(got) != 0 {
		t.Errorf("searches = %+v, want empty", got)
	}
	if got := store.LoadPresets(ctx); len(got) != 0 {
		t.Errorf("presets = %+v, want empty", got)
	}
}

func TestLoad_CorruptPayloadYieldsEmpty(t *testing.T) {
	kv := dbMemory.NewStore()
	ctx := context.Background()
	_ = kv.Set(ctx, "test:search:saved", []byte("]["))
	_ = kv.Set(ctx, "test:search:presets", []byte("]["))
	store := New(kv, "test:", nil)

	if got := store.LoadSearches(ctx); len(got) != 0 {
		t.Errorf("searches = %+v, want empty for corrupt payload", got)
	}
	if got := store.LoadPresets(ctx); len(got) != 0 {
		t.Errorf("presets = %+v, want empty for corrupt payload", got)
	}
}

func TestSearchesAndPresetsUseSeparateKeys(t *testing.T) {
	store := New(dbMemory.NewStore(), "test:", nil)
	ctx := context.Background()

	_ = store.SaveSearches(ctx, []domsaved.Search{{ID: "s1"}})
	_ = store.SavePresets(ctx, []domsaved.Preset{{ID: "p1"}, {ID: "p2"}})

	if got := store.LoadSearches(ctx); len(got) != 1 {
		t.Errorf("searches = %d, want 1", len(got))
	}
	if got := store.LoadPresets(ctx); len(got) != 2 {
		t.Errorf("presets = %d, want 2", len(got))
	}
}
