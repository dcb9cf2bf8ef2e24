// Package history persists the search history list as a JSON array under a
// fixed key in the external key-value store.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/db"
	domhist "github.com/connecthub/searchcore/internal/domain/history"
)

const historyKey = "search:history"

// store is the consumer interface for history persistence.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Store persists history entries in the key-value store.
type Store struct {
	store  store
	prefix string
	logger *zap.Logger
}

// New creates a history store. prefix namespaces the storage key.
func New(s store, prefix string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: s, prefix: prefix, logger: logger}
}

// Load reads the persisted history list. A missing or unreadable payload
// yields an empty list; the in-memory state stays authoritative afterwards.
func (s *Store) Load(ctx context.Context) domhist.List {
	data, err := s.store.Get(ctx, s.key())
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			s.logger.Warn("history load failed, starting empty", zap.Error(err))
		}
		return domhist.List{}
	}

	var entries []domhist.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("history payload corrupt, starting empty", zap.Error(err))
		return domhist.List{}
	}
	return domhist.FromEntries(entries)
}

// Save writes the full history list.
func (s *Store) Save(ctx context.Context, list domhist.List) error {
	data, err := json.Marshal(list.All())
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.store.Set(ctx, s.key(), data); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

func (s *Store) key() string {
	return s.prefix + historyKey
}
