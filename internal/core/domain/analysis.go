package domain

import "time"

// AnalysisInput bundles everything one analysis call consumes.
type AnalysisInput struct {
	// Fluid is the working fluid state.
	Fluid FluidState

	// Pipe is the pipe geometry.
	Pipe PipeGeometry

	// Flow is the flow rate or velocity input.
	Flow FlowSpec

	// MinorLossCoefficient is K_total, the summed fitting/valve loss
	// coefficients. Must be >= 0.
	MinorLossCoefficient float64
}

// Validate checks the full set of analysis entry preconditions.
func (in AnalysisInput) Validate() error {
	if err := in.Flow.Validate(); err != nil {
		return err
	}
	if err := in.Fluid.Validate(); err != nil {
		return err
	}
	if err := in.Pipe.Validate(); err != nil {
		return err
	}
	if in.MinorLossCoefficient < 0 {
		return ErrInvalidInput
	}
	return nil
}

// AnalysisRecord is a persisted history entry for one completed analysis.
type AnalysisRecord struct {
	// ID is a UUID assigned when the record is saved.
	ID string

	// CreatedAt is the save timestamp.
	CreatedAt time.Time

	// Fluid is the fluid name used for the property lookup, or empty if
	// properties were supplied directly.
	Fluid string

	// Temperature is the lookup temperature [K], if a lookup was used.
	Temperature float64

	// Pressure is the lookup pressure [Pa], if a lookup was used.
	Pressure float64

	// Input is the analysis input as given.
	Input AnalysisInput

	// Result is the computed flow result.
	Result FlowResult
}
