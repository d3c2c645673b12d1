package domain

import "fmt"

// FlowMode identifies which flow quantity the caller supplies.
type FlowMode string

// Available flow modes.
const (
	// FlowModeRate means the caller supplies a volumetric flow rate Q.
	FlowModeRate FlowMode = "Q"

	// FlowModeVelocity means the caller supplies a mean velocity V.
	FlowModeVelocity FlowMode = "V"
)

// IsValid returns true if the flow mode is recognised.
func (m FlowMode) IsValid() bool {
	switch m {
	case FlowModeRate, FlowModeVelocity:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m FlowMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m FlowMode) Description() string {
	switch m {
	case FlowModeRate:
		return "Flow rate Q (m3/s)"
	case FlowModeVelocity:
		return "Velocity V (m/s)"
	default:
		return "Unknown"
	}
}

// FlowSpec carries the caller's flow input. Exactly one of FlowRate or
// Velocity must be set; this is the analysis entry precondition, checked
// by Validate, not a standing invariant of a stored object.
type FlowSpec struct {
	// FlowRate is the volumetric flow rate Q [m3/s], if supplied.
	FlowRate *float64

	// Velocity is the mean velocity V [m/s], if supplied.
	Velocity *float64
}

// FlowRateSpec builds a FlowSpec from a volumetric flow rate.
func FlowRateSpec(q float64) FlowSpec {
	return FlowSpec{FlowRate: &q}
}

// VelocitySpec builds a FlowSpec from a mean velocity.
func VelocitySpec(v float64) FlowSpec {
	return FlowSpec{Velocity: &v}
}

// Validate enforces the exactly-one-of precondition.
func (s FlowSpec) Validate() error {
	if s.FlowRate == nil && s.Velocity == nil {
		return fmt.Errorf("%w: provide a flow rate or a velocity", ErrInvalidInput)
	}
	if s.FlowRate != nil && s.Velocity != nil {
		return fmt.Errorf("%w: provide a flow rate or a velocity, not both", ErrInvalidInput)
	}
	return nil
}

// Mode returns the flow mode implied by which field is set. Only
// meaningful after Validate has passed.
func (s FlowSpec) Mode() FlowMode {
	if s.FlowRate != nil {
		return FlowModeRate
	}
	return FlowModeVelocity
}
