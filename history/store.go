package history

import (
	"context"
	"sort"
	"sync"
)

// Store manages history persistence and retrieval.
type Store interface {
	// Append adds a new record.
	Append(ctx context.Context, record *Record) error

	// List returns records newest-first, optionally filtered by category,
	// capped at limit.
	List(ctx context.Context, category Category, limit int) ([]*Record, error)
}

// InMemoryStore implements Store using a slice guarded by an RWMutex.
// It backs tests and deployments without a database.
type InMemoryStore struct {
	records []*Record
	mu      sync.RWMutex
}

// NewInMemoryStore creates a new in-memory history store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append adds a record to the store.
func (s *InMemoryStore) Append(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

// List returns records newest-first, filtered by category when non-empty.
func (s *InMemoryStore) List(_ context.Context, category Category, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultLimit
	}

	matched := make([]*Record, 0, len(s.records))
	for _, r := range s.records {
		if category != "" && r.Category != category {
			continue
		}
		copied := *r
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
