// Package tui provides an interactive terminal user interface for pipeflow.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis runs pipe-flow analyses.
	Analysis driving.AnalysisService

	// Properties resolves fluid properties by name and state.
	Properties driving.PropertyService

	// Moody produces friction-factor curves for the diagram view.
	Moody driving.MoodyService

	// History manages saved analysis records. Optional: the history
	// view degrades to an empty list when absent.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	analysis driving.AnalysisService,
	properties driving.PropertyService,
	moody driving.MoodyService,
	history driving.HistoryService,
) *Ports {
	return &Ports{
		Analysis:   analysis,
		Properties: properties,
		Moody:      moody,
		History:    history,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Properties == nil {
		return ErrMissingPropertyService
	}
	if p.Moody == nil {
		return ErrMissingMoodyService
	}
	return nil
}
