package domain

// FrictionMethod identifies which correlation produced a friction factor.
type FrictionMethod string

// Friction factor methods.
const (
	// MethodLaminar is the exact laminar relation f = 64/Re.
	MethodLaminar FrictionMethod = "laminar"

	// MethodSwameeJain is the explicit Swamee-Jain approximation.
	MethodSwameeJain FrictionMethod = "swamee-jain"

	// MethodColebrook is the iterative Colebrook-White solution.
	MethodColebrook FrictionMethod = "colebrook"
)

// String returns the string representation.
func (m FrictionMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m FrictionMethod) Description() string {
	switch m {
	case MethodLaminar:
		return "Laminar (64/Re)"
	case MethodSwameeJain:
		return "Swamee-Jain (explicit)"
	case MethodColebrook:
		return "Colebrook-White (iterative)"
	default:
		return "Unknown"
	}
}

// FrictionFactor is a tagged Darcy friction factor. The tag records how
// the value was obtained; the solver fields are diagnostics and are only
// populated on the Colebrook path.
type FrictionFactor struct {
	// Value is the Darcy friction factor f.
	Value float64

	// Method identifies the correlation that produced Value.
	Method FrictionMethod

	// Iterations is the number of Colebrook iterations performed.
	Iterations int

	// Converged reports whether the iteration met tolerance before the
	// cap. Always true on the laminar and Swamee-Jain paths. A false
	// value means the result is best-effort (spec'd soft policy).
	Converged bool

	// Residual is |1/sqrt(f) - rhs| of the Colebrook equation at Value.
	// Zero on the non-iterative paths.
	Residual float64
}

// FlowResult is the terminal output of one pipe-flow analysis. Derived
// purely from FluidState, PipeGeometry, FlowSpec and the minor-loss
// coefficient; never mutated after construction.
type FlowResult struct {
	// Reynolds is the Reynolds number Re [-].
	Reynolds float64

	// Friction is the resolved Darcy friction factor.
	Friction FrictionFactor

	// Velocity is the mean velocity V [m/s].
	Velocity float64

	// MajorHead is the Darcy-Weisbach head loss h_f [m].
	MajorHead float64

	// MinorHead is the fittings/valves head loss [m].
	MinorHead float64

	// TotalHead is MajorHead + MinorHead [m].
	TotalHead float64

	// PressureDrop is rho * g * TotalHead [Pa].
	PressureDrop float64
}
