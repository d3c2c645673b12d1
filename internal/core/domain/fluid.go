package domain

import "fmt"

// FluidState holds the fluid properties an analysis needs. Values are
// immutable once constructed; each analysis receives a fresh copy.
//
// At least one viscosity form must be present. When both density and
// dynamic viscosity are known, the kinematic viscosity is derived as
// nu = mu / rho.
type FluidState struct {
	// Density is rho [kg/m3]. Must be positive.
	Density float64

	// DynamicViscosity is mu [Pa.s]. Zero means not supplied.
	DynamicViscosity float64

	// KinematicViscosity is nu [m2/s]. Zero means not supplied.
	KinematicViscosity float64
}

// Validate checks the state against the analysis preconditions.
func (f FluidState) Validate() error {
	if f.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidInput, f.Density)
	}
	if f.DynamicViscosity <= 0 && f.KinematicViscosity <= 0 {
		return fmt.Errorf("%w: provide dynamic or kinematic viscosity", ErrInvalidInput)
	}
	return nil
}

// Kinematic returns the kinematic viscosity nu [m2/s], deriving it from
// mu and rho when it was not supplied directly.
func (f FluidState) Kinematic() (float64, error) {
	if f.KinematicViscosity > 0 {
		return f.KinematicViscosity, nil
	}
	if f.DynamicViscosity <= 0 {
		return 0, fmt.Errorf("%w: provide dynamic or kinematic viscosity", ErrInvalidInput)
	}
	if f.Density <= 0 {
		return 0, fmt.Errorf("%w: density must be positive to derive kinematic viscosity", ErrInvalidInput)
	}
	return f.DynamicViscosity / f.Density, nil
}

// FluidProperties is the record a property store returns for a named
// fluid at a pressure/temperature state.
type FluidProperties struct {
	// Density is rho [kg/m3].
	Density float64

	// DynamicViscosity is mu [Pa.s].
	DynamicViscosity float64
}

// State converts looked-up properties into a FluidState for analysis.
func (p FluidProperties) State() FluidState {
	return FluidState{
		Density:          p.Density,
		DynamicViscosity: p.DynamicViscosity,
	}
}
