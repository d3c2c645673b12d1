package services

// StandardGravity is g [m/s2]. Fixed, not configurable at runtime;
// tests may construct a model with a different value.
const StandardGravity = 9.80665

// HeadLossModel computes major and minor head losses and converts head
// to pressure drop. Gravity is injected at construction so the model
// carries no hidden global state.
type HeadLossModel struct {
	gravity float64
}

// NewHeadLossModel creates a model using standard gravity.
func NewHeadLossModel() *HeadLossModel {
	return &HeadLossModel{gravity: StandardGravity}
}

// NewHeadLossModelWithGravity creates a model with an explicit gravity
// value. Non-positive values fall back to standard gravity.
func NewHeadLossModelWithGravity(g float64) *HeadLossModel {
	if g <= 0 {
		g = StandardGravity
	}
	return &HeadLossModel{gravity: g}
}

// Gravity returns the gravity value the model was constructed with.
func (m *HeadLossModel) Gravity() float64 {
	return m.gravity
}

// Major returns the Darcy-Weisbach head loss h_f = f (L/D) V^2 / 2g [m].
// The diameter must have been validated upstream; geometry validation
// rejects D <= 0 before it reaches this formula.
func (m *HeadLossModel) Major(f, length, diameter, velocity float64) float64 {
	return f * (length / diameter) * velocity * velocity / (2.0 * m.gravity)
}

// Minor returns the lumped fittings head loss K V^2 / 2g [m].
func (m *HeadLossModel) Minor(kTotal, velocity float64) float64 {
	return kTotal * velocity * velocity / (2.0 * m.gravity)
}

// PressureDrop converts a total head [m] to a pressure drop
// rho * g * head [Pa].
func (m *HeadLossModel) PressureDrop(density, totalHead float64) float64 {
	return density * m.gravity * totalHead
}
