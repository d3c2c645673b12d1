package driving

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// HistoryService manages saved analysis records.
type HistoryService interface {
	// Record assigns an ID and timestamp to the record and persists it.
	// Returns the stored record.
	Record(ctx context.Context, rec domain.AnalysisRecord) (domain.AnalysisRecord, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.AnalysisRecord, error)

	// List returns records newest first, up to limit.
	List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// Clear removes all records.
	Clear(ctx context.Context) error
}
