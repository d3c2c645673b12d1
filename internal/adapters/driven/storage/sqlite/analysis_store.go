package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
)

// analysisStore implements driven.AnalysisStore.
type analysisStore struct {
	store *Store
}

var _ driven.AnalysisStore = (*analysisStore)(nil)

// Save stores or updates an analysis record.
func (a *analysisStore) Save(ctx context.Context, rec domain.AnalysisRecord) error {
	inputJSON, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshalling input: %w", err)
	}
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	_, err = a.store.db.ExecContext(ctx, `
		INSERT INTO analyses (id, created_at, fluid, temperature, pressure, input_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			fluid = excluded.fluid,
			temperature = excluded.temperature,
			pressure = excluded.pressure,
			input_json = excluded.input_json,
			result_json = excluded.result_json
	`, rec.ID, rec.CreatedAt.UTC().Format(time.RFC3339Nano), rec.Fluid, rec.Temperature, rec.Pressure,
		string(inputJSON), string(resultJSON))
	if err != nil {
		return fmt.Errorf("saving analysis %s: %w", rec.ID, err)
	}
	return nil
}

// Get retrieves an analysis record by ID.
func (a *analysisStore) Get(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	row := a.store.db.QueryRowContext(ctx, `
		SELECT id, created_at, fluid, temperature, pressure, input_json, result_json
		FROM analyses WHERE id = ?
	`, id)

	rec, err := scanAnalysis(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: analysis %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting analysis %s: %w", id, err)
	}
	return rec, nil
}

// List returns analysis records newest first, up to limit.
func (a *analysisStore) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	query := `
		SELECT id, created_at, fluid, temperature, pressure, input_json, result_json
		FROM analyses ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Delete removes an analysis record by ID.
func (a *analysisStore) Delete(ctx context.Context, id string) error {
	res, err := a.store.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting analysis %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of analysis %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: analysis %s", domain.ErrNotFound, id)
	}
	return nil
}

// Clear removes all analysis records.
func (a *analysisStore) Clear(ctx context.Context) error {
	if _, err := a.store.db.ExecContext(ctx, "DELETE FROM analyses"); err != nil {
		return fmt.Errorf("clearing analyses: %w", err)
	}
	return nil
}

// scanAnalysis builds a record from a row scan function.
func scanAnalysis(scan func(...any) error) (*domain.AnalysisRecord, error) {
	var rec domain.AnalysisRecord
	var createdAt, inputJSON, resultJSON string

	if err := scan(&rec.ID, &createdAt, &rec.Fluid, &rec.Temperature, &rec.Pressure, &inputJSON, &resultJSON); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = ts

	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return nil, fmt.Errorf("unmarshalling input: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return nil, fmt.Errorf("unmarshalling result: %w", err)
	}
	return &rec, nil
}
