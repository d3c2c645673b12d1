package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeadLossModel_StandardGravity(t *testing.T) {
	m := NewHeadLossModel()
	assert.Equal(t, 9.80665, m.Gravity())
}

func TestNewHeadLossModelWithGravity(t *testing.T) {
	m := NewHeadLossModelWithGravity(9.81)
	assert.Equal(t, 9.81, m.Gravity())
}

func TestNewHeadLossModelWithGravity_NonPositiveFallsBack(t *testing.T) {
	assert.Equal(t, StandardGravity, NewHeadLossModelWithGravity(0).Gravity())
	assert.Equal(t, StandardGravity, NewHeadLossModelWithGravity(-9.81).Gravity())
}

func TestHeadLossModel_Major(t *testing.T) {
	m := NewHeadLossModel()

	// h_f = f (L/D) V^2 / 2g
	h := m.Major(0.02, 10, 0.05, 2.0)
	want := 0.02 * (10.0 / 0.05) * 4.0 / (2.0 * StandardGravity)
	assert.InEpsilon(t, want, h, 1e-12)
}

func TestHeadLossModel_Minor(t *testing.T) {
	m := NewHeadLossModel()

	h := m.Minor(1.5, 2.0)
	want := 1.5 * 4.0 / (2.0 * StandardGravity)
	assert.InEpsilon(t, want, h, 1e-12)
}

func TestHeadLossModel_Minor_ZeroCoefficient(t *testing.T) {
	m := NewHeadLossModel()
	assert.Zero(t, m.Minor(0, 5.0))
}

func TestHeadLossModel_PressureDrop(t *testing.T) {
	m := NewHeadLossModel()

	dp := m.PressureDrop(998, 1.25)
	assert.InEpsilon(t, 998*StandardGravity*1.25, dp, 1e-12)
}

func TestHeadLossModel_GravityOverrideFlowsThrough(t *testing.T) {
	m := NewHeadLossModelWithGravity(1.0)

	assert.InEpsilon(t, 0.02*(10.0/0.05)*4.0/2.0, m.Major(0.02, 10, 0.05, 2.0), 1e-12)
	assert.InEpsilon(t, 998.0*2.5, m.PressureDrop(998, 2.5), 1e-12)
}
