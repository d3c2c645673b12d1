package driving

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// AnalysisService runs pipe-flow analyses for external actors.
type AnalysisService interface {
	// Analyze validates the input, sequences velocity, Reynolds number,
	// friction factor, head losses and pressure drop, and returns the
	// assembled result. Deterministic: identical inputs yield identical
	// outputs.
	Analyze(ctx context.Context, in domain.AnalysisInput) (domain.FlowResult, error)
}
