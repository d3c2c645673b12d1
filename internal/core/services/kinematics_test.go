package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

func TestVelocityFromFlowRate(t *testing.T) {
	// Q = 0.01 m3/s through D = 0.05 m: A = pi*D^2/4 = 1.9635e-3 m2.
	v, err := VelocityFromFlowRate(0.01, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 5.0930, v, 1e-3)
}

func TestVelocityFromFlowRate_ZeroFlow(t *testing.T) {
	v, err := VelocityFromFlowRate(0, 0.05)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestVelocityFromFlowRate_InvalidDiameter(t *testing.T) {
	tests := []struct {
		name string
		d    float64
	}{
		{"zero", 0},
		{"negative", -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VelocityFromFlowRate(0.01, tt.d)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestReynoldsNumber_FromDynamicViscosity(t *testing.T) {
	fluid := domain.FluidState{Density: 998, DynamicViscosity: 0.001}

	re, err := ReynoldsNumber(fluid, 5.0929582, 0.05)
	require.NoError(t, err)

	// Re = rho*V*D/mu
	want := 998.0 * 5.0929582 * 0.05 / 0.001
	assert.InEpsilon(t, want, re, 1e-9)
}

func TestReynoldsNumber_FromKinematicViscosity(t *testing.T) {
	fluid := domain.FluidState{Density: 998, KinematicViscosity: 1e-6}

	re, err := ReynoldsNumber(fluid, 2.0, 0.05)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.0*0.05/1e-6, re, 1e-9)
}

func TestReynoldsNumber_KinematicTakesPrecedence(t *testing.T) {
	// When both forms are supplied, nu is used directly rather than
	// re-derived from mu.
	fluid := domain.FluidState{Density: 998, DynamicViscosity: 0.001, KinematicViscosity: 2e-6}

	re, err := ReynoldsNumber(fluid, 1.0, 0.05)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.05/2e-6, re, 1e-9)
}

func TestReynoldsNumber_NoViscosity(t *testing.T) {
	fluid := domain.FluidState{Density: 998}
	_, err := ReynoldsNumber(fluid, 1.0, 0.05)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReynoldsNumber_BadDensityWhenDeriving(t *testing.T) {
	fluid := domain.FluidState{Density: 0, DynamicViscosity: 0.001}
	_, err := ReynoldsNumber(fluid, 1.0, 0.05)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReynoldsNumber_InvalidDiameter(t *testing.T) {
	fluid := domain.FluidState{Density: 998, DynamicViscosity: 0.001}
	_, err := ReynoldsNumber(fluid, 1.0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVelocityFromFlowRate_MatchesArea(t *testing.T) {
	// V * A == Q for a range of diameters.
	for _, d := range []float64{0.01, 0.05, 0.1, 0.5, 1.0} {
		v, err := VelocityFromFlowRate(0.02, d)
		require.NoError(t, err)
		area := math.Pi * d * d / 4.0
		assert.InEpsilon(t, 0.02, v*area, 1e-12)
	}
}
