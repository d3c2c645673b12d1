package moody

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// MockMoodyService implements driving.MoodyService for testing.
type MockMoodyService struct {
	CurveFunc func(ctx context.Context, sweep domain.MoodySweep) ([]domain.MoodyPoint, error)
}

func (m *MockMoodyService) Curve(
	ctx context.Context, sweep domain.MoodySweep,
) ([]domain.MoodyPoint, error) {
	if m.CurveFunc != nil {
		return m.CurveFunc(ctx, sweep)
	}
	return []domain.MoodyPoint{
		{Reynolds: 1e4, Friction: 0.031},
		{Reynolds: 1e5, Friction: 0.018},
		{Reynolds: 1e6, Friction: 0.012},
	}, nil
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	require.NotNil(t, v)
	assert.Equal(t, "1e-4", v.roughnessInput.Value())
	assert.InDelta(t, 1e-4, v.sweep.RelativeRoughness, 1e-12)
}

func TestView_Init_ComputesCurve(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	computed, ok := msg.(messages.CurveComputed)
	require.True(t, ok)
	require.NoError(t, computed.Err)
	assert.Len(t, computed.Points, 3)
	assert.InDelta(t, 1e-4, computed.Sweep.RelativeRoughness, 1e-12)
}

func TestView_Update_CurveComputed(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	points := []domain.MoodyPoint{{Reynolds: 1e4, Friction: 0.03}}
	v.Update(messages.CurveComputed{
		Sweep:  domain.MoodySweep{RelativeRoughness: 1e-3}.Normalised(),
		Points: points,
	})

	assert.Len(t, v.points, 1)
	assert.InDelta(t, 1e-3, v.sweep.RelativeRoughness, 1e-12)
}

func TestView_Update_CurveError(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	v.Update(messages.CurveComputed{Err: errors.New("sweep failed")})

	assert.EqualError(t, v.err, "sweep failed")
}

func TestView_Update_BadRoughness(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})
	v.roughnessInput.SetValue("bogus")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.err, domain.ErrInvalidInput)
}

func TestView_Update_OperatingPointSet(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	_, cmd := v.Update(messages.OperatingPointSet{
		Reynolds:          2.5e5,
		Friction:          0.0185,
		RelativeRoughness: 2e-4,
	})

	require.NotNil(t, v.point)
	assert.InDelta(t, 2.5e5, v.point.Reynolds, 1)
	assert.Equal(t, "0.0002", v.roughnessInput.Value())
	// Roughness changed, so the curve is recomputed.
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.CurveComputed)
	assert.True(t, ok)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_View_RendersChart(t *testing.T) {
	v := NewView(nil, &MockMoodyService{})
	v.SetDimensions(100, 40)

	cmd := v.Init()
	v.Update(cmd())

	output := v.View()

	assert.Contains(t, output, "Moody Diagram")
	assert.Contains(t, output, "Relative roughness")
}
