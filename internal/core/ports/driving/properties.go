package driving

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// PropertyService resolves fluid properties for the presentation layers.
type PropertyService interface {
	// Lookup returns properties for fluid at pressure [Pa] and
	// temperature [K]. Lookup failures propagate unchanged; the caller
	// must halt and report them.
	Lookup(ctx context.Context, fluid string, pressure, temperature float64) (domain.FluidProperties, error)

	// ListFluids returns the names of all known fluids, sorted.
	ListFluids(ctx context.Context) ([]string, error)
}
