// Package moody provides the friction-factor diagram view for the TUI.
package moody

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/chart"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// View represents the moody diagram view. The curve is recomputed via
// the moody service whenever the relative roughness changes; an
// operating point can be pushed onto the curve from the analysis view.
type View struct {
	styles       *styles.Styles
	moodyService driving.MoodyService
	ctx          context.Context

	roughnessInput textinput.Model

	sweep  domain.MoodySweep
	points []domain.MoodyPoint
	point  *chart.OperatingPoint

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new moody diagram view.
func NewView(s *styles.Styles, moodyService driving.MoodyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.SetValue("1e-4")
	ti.Focus()

	return &View{
		styles:         s,
		moodyService:   moodyService,
		ctx:            context.Background(),
		roughnessInput: ti,
		sweep:          domain.MoodySweep{RelativeRoughness: 1e-4}.Normalised(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init computes the initial curve.
func (v *View) Init() tea.Cmd {
	return v.computeCurve()
}

// Update handles messages for the moody view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}

		case "enter", "r":
			if msg.String() == "enter" || !v.roughnessInput.Focused() {
				return v, v.computeCurve()
			}
		}

		var cmd tea.Cmd
		v.roughnessInput, cmd = v.roughnessInput.Update(msg)
		return v, cmd

	case messages.CurveComputed:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.sweep = msg.Sweep
		v.points = msg.Points
		v.err = nil
		return v, nil

	case messages.OperatingPointSet:
		v.point = &chart.OperatingPoint{
			Reynolds: msg.Reynolds,
			Friction: msg.Friction,
		}
		if msg.RelativeRoughness > 0 {
			v.roughnessInput.SetValue(strconv.FormatFloat(msg.RelativeRoughness, 'g', -1, 64))
			return v, v.computeCurve()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// computeCurve parses the roughness field and returns a command that
// evaluates the sweep.
func (v *View) computeCurve() tea.Cmd {
	raw := strings.TrimSpace(v.roughnessInput.Value())
	roughness, err := strconv.ParseFloat(raw, 64)
	if err != nil || roughness < 0 {
		v.err = fmt.Errorf("%w: relative roughness %q", domain.ErrInvalidInput, raw)
		return nil
	}
	v.err = nil

	sweep := domain.MoodySweep{RelativeRoughness: roughness}.Normalised()
	ctx := v.ctx
	service := v.moodyService

	return func() tea.Msg {
		points, err := service.Curve(ctx, sweep)
		return messages.CurveComputed{Sweep: sweep, Points: points, Err: err}
	}
}

// View renders the diagram.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Moody Diagram"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Label.Render("Relative roughness"))
	b.WriteString(" ")
	b.WriteString(v.roughnessInput.View())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	if len(v.points) > 0 {
		width := v.width - 12
		height := v.height - 12
		b.WriteString(chart.Moody(v.points, chart.Options{
			Width:             width,
			Height:            height,
			Point:             v.point,
			RelativeRoughness: v.sweep.RelativeRoughness,
		}))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[Enter] Recompute  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
