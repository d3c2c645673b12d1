package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
)

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is an in-memory implementation of driven.AnalysisStore
// for testing.
type AnalysisStore struct {
	mu      sync.RWMutex
	records map[string]domain.AnalysisRecord
	order   []string // insertion order of IDs
}

// NewAnalysisStore creates an empty in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		records: make(map[string]domain.AnalysisRecord),
	}
}

// Save stores a record.
func (s *AnalysisStore) Save(_ context.Context, rec domain.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.records[rec.ID] = rec
	return nil
}

// Get retrieves a record by ID.
func (s *AnalysisStore) Get(_ context.Context, id string) (*domain.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: analysis %s", domain.ErrNotFound, id)
	}
	return &rec, nil
}

// List returns records newest first, up to limit.
func (s *AnalysisStore) List(_ context.Context, limit int) ([]domain.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.AnalysisRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		records = append(records, s.records[s.order[i]])
	}

	// Stable sort on timestamp; insertion order already breaks ties.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Delete removes a record by ID.
func (s *AnalysisStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("%w: analysis %s", domain.ErrNotFound, id)
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all records.
func (s *AnalysisStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]domain.AnalysisRecord)
	s.order = nil
	return nil
}
