// Package saved persists saved searches and filter presets as JSON arrays
// under two fixed keys in the external key-value store.
package saved

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/db"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
)

const (
	searchesKey = "search:saved"
	presetsKey  = "search:presets"
)

// store is the consumer interface for saved-search persistence.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Store persists saved searches and filter presets.
type Store struct {
	store  store
	prefix string
	logger *zap.Logger
}

// New creates a saved-search store. prefix namespaces the storage keys.
func New(s store, prefix string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: s, prefix: prefix, logger: logger}
}

// LoadSearches reads all persisted saved searches. Missing or unreadable
// payloads yield an empty slice.
func (s *Store) LoadSearches(ctx context.Context) []domsaved.Search {
	var out []domsaved.Search
	s.load(ctx, s.prefix+searchesKey, &out)
	return out
}

// SaveSearches writes the full saved-search list.
func (s *Store) SaveSearches(ctx context.Context, searches []domsaved.Search) error {
	return s.save(ctx, s.prefix+searchesKey, searches)
}

// LoadPresets reads all persisted filter presets. Missing or unreadable
// payloads yield an empty slice.
func (s *Store) LoadPresets(ctx context.Context) []domsaved.Preset {
	var out []domsaved.Preset
	s.load(ctx, s.prefix+presetsKey, &out)
	return out
}

// SavePresets writes the full preset list.
func (s *Store) SavePresets(ctx context.Context, presets []domsaved.Preset) error {
	return s.save(ctx, s.prefix+presetsKey, presets)
}

func (s *Store) load(ctx context.Context, key string, out any) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			s.logger.Warn("saved-search load failed, starting empty",
				zap.String("key", key), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("saved-search payload corrupt, starting empty",
			zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
