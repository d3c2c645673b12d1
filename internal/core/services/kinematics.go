package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// VelocityFromFlowRate converts a volumetric flow rate Q [m3/s] to the
// mean velocity V [m/s] in a circular pipe of diameter d [m].
func VelocityFromFlowRate(q, d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", domain.ErrInvalidInput, d)
	}
	area := math.Pi * d * d / 4.0
	return q / area, nil
}

// ReynoldsNumber computes Re = V*D/nu from the fluid state. The
// kinematic viscosity is used directly when supplied, otherwise derived
// as mu/rho.
func ReynoldsNumber(fluid domain.FluidState, v, d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", domain.ErrInvalidInput, d)
	}
	nu, err := fluid.Kinematic()
	if err != nil {
		return 0, err
	}
	return v * d / nu, nil
}
