package driven

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// FluidPropertyStore resolves density and viscosity for a named fluid
// at a pressure/temperature state. The core never computes properties
// itself; a lookup failure is an upstream error and must halt the
// computation, not be replaced with defaults.
type FluidPropertyStore interface {
	// Lookup returns the properties of fluid at pressure [Pa] and
	// temperature [K]. Returns domain.ErrUnknownFluid for an unknown
	// name and domain.ErrStateOutOfRange for a state outside the
	// tabulated range.
	Lookup(ctx context.Context, fluid string, pressure, temperature float64) (domain.FluidProperties, error)

	// ListFluids returns the names of all known fluids, sorted.
	ListFluids(ctx context.Context) ([]string, error)

	// Close releases any underlying resources.
	Close() error
}
