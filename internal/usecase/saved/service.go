// Package saved manages saved searches and filter presets.
package saved

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/connecthub/searchcore/internal/domain"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

// Repository persists saved searches and presets.
type Repository interface {
	LoadSearches(ctx context.Context) []domsaved.Search
	SaveSearches(ctx context.Context, searches []domsaved.Search) error
	LoadPresets(ctx context.Context) []domsaved.Preset
	SavePresets(ctx context.Context, presets []domsaved.Preset) error
}

// Service owns the in-memory saved-search and preset collections. Mutations
// persist through the repository after every change.
type Service struct {
	repo Repository
	now  func() time.Time

	mu       sync.Mutex
	searches []domsaved.Search
	presets  []domsaved.Preset
}

// New creates the service, rehydrating both collections from the repository.
func New(ctx context.Context, repo Repository) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		searches: repo.LoadSearches(ctx),
		presets:  repo.LoadPresets(ctx),
	}
}

// WithClock overrides the time source for creation timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SaveSearch stores a query + filter snapshot with notifications off.
func (s *Service) SaveSearch(ctx context.Context, query string, f filter.Filters) (domsaved.Search, error) {
	sv := domsaved.Search{
		ID:        uuid.NewString(),
		Query:     strings.TrimSpace(query),
		Filters:   f,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.searches = append(s.searches, sv)
	snapshot := s.snapshotSearches()
	s.mu.Unlock()

	return sv, s.repo.SaveSearches(ctx, snapshot)
}

// Searches returns all saved searches.
func (s *Service) Searches() []domsaved.Search {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotSearches()
}

// ToggleNotifications flips the notification flag on a saved search.
// Returns domain.ErrSavedSearchNotFound when the id is unknown.
func (s *Service) ToggleNotifications(ctx context.Context, id string) (domsaved.Search, error) {
	s.mu.Lock()
	idx := s.findSearch(id)
	if idx < 0 {
		s.mu.Unlock()
		return domsaved.Search{}, domain.ErrSavedSearchNotFound
	}
	s.searches[idx].NotificationsEnabled = !s.searches[idx].NotificationsEnabled
	updated := s.searches[idx]
	snapshot := s.snapshotSearches()
	s.mu.Unlock()

	return updated, s.repo.SaveSearches(ctx, snapshot)
}

// DeleteSearch removes a saved search by id.
func (s *Service) DeleteSearch(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.findSearch(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrSavedSearchNotFound
	}
	s.searches = append(s.searches[:idx], s.searches[idx+1:]...)
	snapshot := s.snapshotSearches()
	s.mu.Unlock()

	return s.repo.SaveSearches(ctx, snapshot)
}

// SavePreset stores a named filter snapshot.
func (s *Service) SavePreset(ctx context.Context, name string, f filter.Filters) (domsaved.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domsaved.Preset{}, domain.ErrEmptyPresetName
	}

	p := domsaved.Preset{
		ID:        uuid.NewString(),
		Name:      name,
		Filters:   f,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.presets = append(s.presets, p)
	snapshot := s.snapshotPresets()
	s.mu.Unlock()

	return p, s.repo.SavePresets(ctx, snapshot)
}

// Preset returns a preset by id.
func (s *Service) Preset(id string) (domsaved.Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.findPreset(id)
	if idx < 0 {
		return domsaved.Preset{}, domain.ErrPresetNotFound
	}
	return s.presets[idx], nil
}

// Presets returns all presets.
func (s *Service) Presets() []domsaved.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotPresets()
}

// UpdatePreset replaces a preset's filter snapshot.
func (s *Service) UpdatePreset(ctx context.Context, id string, f filter.Filters) (domsaved.Preset, error) {
	s.mu.Lock()
	idx := s.findPreset(id)
	if idx < 0 {
		s.mu.Unlock()
		return domsaved.Preset{}, domain.ErrPresetNotFound
	}
	s.presets[idx].Filters = f
	updated := s.presets[idx]
	snapshot := s.snapshotPresets()
	s.mu.Unlock()

	return updated, s.repo.SavePresets(ctx, snapshot)
}

// RenamePreset changes a preset's name.
func (s *Service) RenamePreset(ctx context.Context, id, name string) (domsaved.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domsaved.Preset{}, domain.ErrEmptyPresetName
	}

	s.mu.Lock()
	idx := s.findPreset(id)
	if idx < 0 {
		s.mu.Unlock()
		return domsaved.Preset{}, domain.ErrPresetNotFound
	}
	s.presets[idx].Name = name
	updated := s.presets[idx]
	snapshot := s.snapshotPresets()
	s.mu.Unlock()

	return updated, s.repo.SavePresets(ctx, snapshot)
}

// DeletePreset removes a preset by id.
func (s *Service) DeletePreset(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.findPreset(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrPresetNotFound
	}
	s.presets = append(s.presets[:idx], s.presets[idx+1:]...)
	snapshot := s.snapshotPresets()
	s.mu.Unlock()

	return s.repo.SavePresets(ctx, snapshot)
}

func (s *Service) findSearch(id string) int {
	for i, sv := range s.searches {
		if sv.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) findPreset(id string) int {
	for i, p := range s.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshotSearches() []domsaved.Search {
	out := make([]domsaved.Search, len(s.searches))
	copy(out, s.searches)
	return out
}

func (s *Service) snapshotPresets() []domsaved.Preset {
	out := make([]domsaved.Preset, len(s.presets))
	copy(out, s.presets)
	return out
}
