package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pipeflow-cli/internal/logger"
)

// Ensure PropertyService implements the interface.
var _ driving.PropertyService = (*PropertyService)(nil)

// PropertyService exposes the fluid property store to the presentation
// layers. Lookup failures propagate unchanged; the core never recovers
// from an upstream property error.
type PropertyService struct {
	store driven.FluidPropertyStore
}

// NewPropertyService creates a property service over the given store.
func NewPropertyService(store driven.FluidPropertyStore) *PropertyService {
	return &PropertyService{store: store}
}

// Lookup returns the properties of fluid at pressure [Pa] and
// temperature [K].
func (s *PropertyService) Lookup(ctx context.Context, fluid string, pressure, temperature float64) (domain.FluidProperties, error) {
	logger.Debug("Property lookup: fluid=%s P=%g Pa T=%g K", fluid, pressure, temperature)

	props, err := s.store.Lookup(ctx, fluid, pressure, temperature)
	if err != nil {
		return domain.FluidProperties{}, fmt.Errorf("looking up %s: %w", fluid, err)
	}

	logger.Debug("Properties: rho=%g kg/m3 mu=%g Pa.s", props.Density, props.DynamicViscosity)
	return props, nil
}

// ListFluids returns the names of all known fluids, sorted.
func (s *PropertyService) ListFluids(ctx context.Context) ([]string, error) {
	return s.store.ListFluids(ctx)
}
