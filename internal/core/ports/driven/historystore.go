package driven

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// AnalysisStore persists completed analysis records.
// Backed by SQLite for durable history.
type AnalysisStore interface {
	// Save stores a record. The record must already carry an ID.
	Save(ctx context.Context, rec domain.AnalysisRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if the
	// record does not exist.
	Get(ctx context.Context, id string) (*domain.AnalysisRecord, error)

	// List returns records newest first, up to limit. A non-positive
	// limit means no limit.
	List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// Clear removes all records.
	Clear(ctx context.Context) error
}
