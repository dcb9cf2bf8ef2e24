// Package searchcore is the in-process search surface for the ConnectHub
// social application: free-text search over seven entity collections with
// relevance ranking, autocomplete, geo radius search, search history, saved
// searches, filter presets, and derived insights.
package searchcore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/db"
	dbMemory "github.com/connecthub/searchcore/internal/db/memory"
	dbRedis "github.com/connecthub/searchcore/internal/db/redis"
	historyrepo "github.com/connecthub/searchcore/internal/repository/history"
	"github.com/connecthub/searchcore/internal/repository/index"
	savedrepo "github.com/connecthub/searchcore/internal/repository/saved"
	historyuc "github.com/connecthub/searchcore/internal/usecase/history"
	insightsuc "github.com/connecthub/searchcore/internal/usecase/insights"
	nearbyuc "github.com/connecthub/searchcore/internal/usecase/nearby"
	saveduc "github.com/connecthub/searchcore/internal/usecase/saved"
	searchuc "github.com/connecthub/searchcore/internal/usecase/search"
	suggestuc "github.com/connecthub/searchcore/internal/usecase/suggest"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the searchcore entry point. One Client owns one index, one
// sticky filter state, and one set of persisted stores; tests can create as
// many independent instances as they need.
type Client struct {
	store    db.Store
	search   *searchuc.Service
	suggest  *suggestuc.Service
	nearby   *nearbyuc.Service
	history  *historyuc.Service
	saved    *saveduc.Service
	insights *insightsuc.Service
}

// New creates a Client, connects to the persistence store, and rehydrates
// history, saved searches, and presets.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: "connecthub:",
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("searchcore: store not ready: %w", err)
	}

	return wireClient(ctx, store, cfg), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("searchcore: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("searchcore: unknown driver %q", cfg.driver)
	}
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig) *Client {
	idx := index.New(index.DefaultDataset(cfg.now()))

	histStore := historyrepo.New(store, cfg.keyPrefix, cfg.logger)
	savedStore := savedrepo.New(store, cfg.keyPrefix, cfg.logger)

	histSvc := historyuc.New(ctx, histStore).WithClock(cfg.now)
	savedSvc := saveduc.New(ctx, savedStore).WithClock(cfg.now)
	searchSvc := searchuc.New(idx, histSvc, cfg.logger).WithClock(cfg.now)
	suggestSvc := suggestuc.New(idx, nil)
	nearbySvc := nearbyuc.New(idx)
	insightsSvc := insightsuc.New(histSvc, savedSvc, idx)

	return &Client{
		store:    store,
		search:   searchSvc,
		suggest:  suggestSvc,
		nearby:   nearbySvc,
		history:  histSvc,
		saved:    savedSvc,
		insights: insightsSvc,
	}
}

// Close releases the persistence store.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks persistence-store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs a free-text search. upd merges onto the sticky filter state;
// queries shorter than two characters return an empty bundle.
func (c *Client) Search(ctx context.Context, query string, upd FilterUpdate) Results {
	return fromBundle(c.search.Search(ctx, query, toInternalUpdate(upd)))
}

// SearchByInterests returns people sharing any of the given interests,
// ordered by shared-interest count, then follower count.
func (c *Client) SearchByInterests(interests []string) []Person {
	return mapSlice(c.search.SearchByInterests(interests), fromPerson)
}

// SearchByWorkplace returns people whose workplace matches the text.
func (c *Client) SearchByWorkplace(workplace string) []Person {
	return mapSlice(c.search.SearchByWorkplace(workplace), fromPerson)
}

// Suggest returns autocomplete suggestions, at most ten.
func (c *Client) Suggest(query string) []Suggestion {
	return mapSlice(c.suggest.Suggest(query), fromSuggestion)
}

// Nearby returns entities within radiusKm of the point, sorted by distance.
// A non-positive radius falls back to the 25 km default.
func (c *Client) Nearby(lat, lng float64, radiusKm int) (NearbyResults, error) {
	b, err := c.nearby.Nearby(lat, lng, radiusKm)
	if err != nil {
		return NearbyResults{}, err
	}
	return fromNearbyBundle(b), nil
}

// CurrentFilters returns the engine's sticky filter state.
func (c *Client) CurrentFilters() Filters {
	return fromInternalFilters(c.search.CurrentFilters())
}

// RecentHistory returns the newest n history entries (n <= 0 means 10).
func (c *Client) RecentHistory(n int) []HistoryEntry {
	return mapSlice(c.history.Recent(n), fromHistoryEntry)
}

// ClearHistory drops all history entries.
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.history.Clear(ctx)
}

// DeleteHistoryEntry removes one history entry by query.
func (c *Client) DeleteHistoryEntry(ctx context.Context, query string) (bool, error) {
	return c.history.Delete(ctx, query)
}

// SaveSearch stores the query with the current filter state.
func (c *Client) SaveSearch(ctx context.Context, query string) (SavedSearch, error) {
	sv, err := c.saved.SaveSearch(ctx, query, c.search.CurrentFilters())
	if err != nil {
		return SavedSearch{}, err
	}
	return fromSavedSearch(sv), nil
}

// SavedSearches returns all saved searches.
func (c *Client) SavedSearches() []SavedSearch {
	return mapSlice(c.saved.Searches(), fromSavedSearch)
}

// ToggleSavedSearchNotifications flips the notification flag.
func (c *Client) ToggleSavedSearchNotifications(ctx context.Context, id string) (SavedSearch, error) {
	sv, err := c.saved.ToggleNotifications(ctx, id)
	if err != nil {
		return SavedSearch{}, err
	}
	return fromSavedSearch(sv), nil
}

// DeleteSavedSearch removes a saved search.
func (c *Client) DeleteSavedSearch(ctx context.Context, id string) error {
	return c.saved.DeleteSearch(ctx, id)
}

// SaveFilterPreset stores the current filter state under a name.
func (c *Client) SaveFilterPreset(ctx context.Context, name string) (FilterPreset, error) {
	p, err := c.saved.SavePreset(ctx, name, c.search.CurrentFilters())
	if err != nil {
		return FilterPreset{}, err
	}
	return fromPreset(p), nil
}

// FilterPresets returns all presets.
func (c *Client) FilterPresets() []FilterPreset {
	return mapSlice(c.saved.Presets(), fromPreset)
}

// UpdateFilterPreset replaces a preset's filters.
func (c *Client) UpdateFilterPreset(ctx context.Context, id string, f Filters) (FilterPreset, error) {
	p, err := c.saved.UpdatePreset(ctx, id, toInternalFilters(f).Normalize())
	if err != nil {
		return FilterPreset{}, err
	}
	return fromPreset(p), nil
}

// DeleteFilterPreset removes a preset.
func (c *Client) DeleteFilterPreset(ctx context.Context, id string) error {
	return c.saved.DeletePreset(ctx, id)
}

// ApplyFilterPreset replaces the engine's filter state with the preset's
// snapshot (replace, not merge).
func (c *Client) ApplyFilterPreset(id string) (Filters, error) {
	p, err := c.saved.Preset(id)
	if err != nil {
		return Filters{}, err
	}
	c.search.ReplaceFilters(p.Filters)
	return fromInternalFilters(c.search.CurrentFilters()), nil
}

// Insights derives analytics from history, the saved stores, and the index.
func (c *Client) Insights() InsightsReport {
	return fromInsights(c.insights.Insights())
}
