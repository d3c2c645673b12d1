package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService persists completed analyses. Recording is a layer
// above the orchestrator; the analysis itself stays pure.
type HistoryService struct {
	store driven.AnalysisStore
}

// NewHistoryService creates a history service over the given store.
func NewHistoryService(store driven.AnalysisStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record assigns an ID and timestamp and persists the record.
func (s *HistoryService) Record(ctx context.Context, rec domain.AnalysisRecord) (domain.AnalysisRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, rec); err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("saving analysis record: %w", err)
	}
	return rec, nil
}

// Get retrieves a record by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	return s.store.Get(ctx, id)
}

// List returns records newest first, up to limit.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	return s.store.List(ctx, limit)
}

// Delete removes a record by ID.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
