// Package history owns the in-memory search history and its persistence.
package history

import (
	"context"
	"sync"
	"time"

	domhist "github.com/connecthub/searchcore/internal/domain/history"
)

// Repository persists the history list.
type Repository interface {
	Load(ctx context.Context) domhist.List
	Save(ctx context.Context, list domhist.List) error
}

// Service holds the authoritative in-memory history list. Every mutation is
// persisted through the repository; a failed save leaves the in-memory state
// authoritative for the rest of the session.
type Service struct {
	repo Repository
	now  func() time.Time

	mu   sync.Mutex
	list domhist.List
}

// New creates a history service, rehydrating the list from the repository.
func New(ctx context.Context, repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		list: repo.Load(ctx),
	}
}

// WithClock overrides the time source for entry timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Record appends a query to the front of history (deduplicated, capped) and
// persists. Too-short queries are a no-op.
func (s *Service) Record(ctx context.Context, query string, resultCount int) error {
	if !domhist.Recordable(query) {
		return nil
	}

	s.mu.Lock()
	s.list.Record(query, resultCount, s.now())
	snapshot := s.list.Clone()
	s.mu.Unlock()

	return s.repo.Save(ctx, snapshot)
}

// Recent returns the newest n entries; n <= 0 means the default of 10.
func (s *Service) Recent(n int) []domhist.Entry {
	if n <= 0 {
		n = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Recent(n)
}

// All returns every entry, newest first.
func (s *Service) All() []domhist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.All()
}

// Len returns the number of entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

// Clear drops all entries and persists the empty list.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.list.Clear()
	snapshot := s.list.Clone()
	s.mu.Unlock()

	return s.repo.Save(ctx, snapshot)
}

// Delete removes a single entry by query. Returns false when no entry
// matched; that is not an error.
func (s *Service) Delete(ctx context.Context, query string) (bool, error) {
	s.mu.Lock()
	found := s.list.Delete(query)
	snapshot := s.list.Clone()
	s.mu.Unlock()

	if !found {
		return false, nil
	}
	return true, s.repo.Save(ctx, snapshot)
}
