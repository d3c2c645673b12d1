// Package analysis provides the analysis input form and results view
// for the TUI.
package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// Field indices into the form inputs.
const (
	fieldFluid = iota
	fieldTemperature
	fieldPressure
	fieldMode
	fieldValue
	fieldDiameter
	fieldLength
	fieldRoughness
	fieldKTotal
	fieldCount
)

// labels holds the form field labels, indexed by field constant.
var labels = [fieldCount]string{
	"Fluid",
	"Temperature [K]",
	"Pressure [Pa]",
	"Mode (Q or V)",
	"Flow rate [m3/s] / Velocity [m/s]",
	"Diameter [m]",
	"Length [m]",
	"Roughness [m]",
	"Minor loss K total",
}

// View represents the analysis form with an inline results panel.
type View struct {
	styles *styles.Styles

	analysisService driving.AnalysisService
	propertyService driving.PropertyService
	historyService  driving.HistoryService
	ctx             context.Context

	inputs  [fieldCount]textinput.Model
	focused int

	// Last successful run, kept for the results panel and for saving.
	result      *domain.FlowResult
	input       domain.AnalysisInput
	fluid       string
	temperature float64
	pressure    float64
	saved       string

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new analysis view.
func NewView(
	s *styles.Styles,
	analysisService driving.AnalysisService,
	propertyService driving.PropertyService,
	historyService driving.HistoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:          s,
		analysisService: analysisService,
		propertyService: propertyService,
		historyService:  historyService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}

	defaults := [fieldCount]string{
		"Water", "300", "101325", "Q", "", "", "", "1e-5", "0",
	}
	for i := range v.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.SetValue(defaults[i])
		v.inputs[i] = ti
	}
	v.inputs[fieldFluid].Focus()

	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears any previous result and refocuses the first field.
func (v *View) Reset() {
	v.result = nil
	v.err = nil
	v.saved = ""
	v.setFocus(fieldFluid)
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnalysisCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.RecordSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.saved = msg.Record.ID
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v.updateFocused(msg)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "tab", "down":
		v.setFocus((v.focused + 1) % fieldCount)
		return v, nil

	case "shift+tab", "up":
		v.setFocus((v.focused + fieldCount - 1) % fieldCount)
		return v, nil

	case "ctrl+r":
		return v, v.runAnalysis()

	case "ctrl+s":
		return v, v.saveResult()

	case "enter":
		// Enter on the last field submits, otherwise advances.
		if v.focused == fieldCount-1 {
			return v, v.runAnalysis()
		}
		v.setFocus(v.focused + 1)
		return v, nil
	}

	return v.updateFocused(msg)
}

func (v *View) updateFocused(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

func (v *View) setFocus(i int) {
	v.inputs[v.focused].Blur()
	v.focused = i
	v.inputs[v.focused].Focus()
}

// buildInput parses the form fields into an analysis input. Property
// lookup is deferred to the returned command so the fluid state here is
// a placeholder.
func (v *View) buildInput() (domain.AnalysisInput, error) {
	var in domain.AnalysisInput

	temperature, err := parseField(fieldTemperature, v.inputs[fieldTemperature].Value())
	if err != nil {
		return in, err
	}
	pressure, err := parseField(fieldPressure, v.inputs[fieldPressure].Value())
	if err != nil {
		return in, err
	}
	value, err := parseField(fieldValue, v.inputs[fieldValue].Value())
	if err != nil {
		return in, err
	}
	diameter, err := parseField(fieldDiameter, v.inputs[fieldDiameter].Value())
	if err != nil {
		return in, err
	}
	length, err := parseField(fieldLength, v.inputs[fieldLength].Value())
	if err != nil {
		return in, err
	}
	roughness, err := parseField(fieldRoughness, v.inputs[fieldRoughness].Value())
	if err != nil {
		return in, err
	}
	kTotal, err := parseField(fieldKTotal, v.inputs[fieldKTotal].Value())
	if err != nil {
		return in, err
	}

	mode := strings.ToUpper(strings.TrimSpace(v.inputs[fieldMode].Value()))
	switch mode {
	case "Q":
		in.Flow = domain.FlowRateSpec(value)
	case "V":
		in.Flow = domain.VelocitySpec(value)
	default:
		return in, fmt.Errorf("%w: mode must be Q or V, got %q", domain.ErrInvalidInput, mode)
	}

	in.Pipe = domain.PipeGeometry{
		Diameter:  diameter,
		Length:    length,
		Roughness: roughness,
	}
	in.MinorLossCoefficient = kTotal

	v.fluid = strings.TrimSpace(v.inputs[fieldFluid].Value())
	v.temperature = temperature
	v.pressure = pressure
	if v.fluid == "" {
		return in, fmt.Errorf("%w: fluid name is empty", domain.ErrInvalidInput)
	}

	return in, nil
}

func parseField(field int, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", domain.ErrInvalidInput, labels[field], raw)
	}
	return value, nil
}

// runAnalysis parses the form and returns a command that looks up the
// fluid properties and runs the analysis.
func (v *View) runAnalysis() tea.Cmd {
	in, err := v.buildInput()
	if err != nil {
		v.err = err
		v.result = nil
		return nil
	}
	v.err = nil
	v.saved = ""

	ctx := v.ctx
	fluid := v.fluid
	pressure := v.pressure
	temperature := v.temperature
	properties := v.propertyService
	analysis := v.analysisService

	return func() tea.Msg {
		props, err := properties.Lookup(ctx, fluid, pressure, temperature)
		if err != nil {
			return messages.AnalysisCompleted{Err: err}
		}
		in.Fluid = props.State()

		result, err := analysis.Analyze(ctx, in)
		if err != nil {
			return messages.AnalysisCompleted{Input: in, Err: err}
		}
		return messages.AnalysisCompleted{Input: in, Result: result, Fluid: fluid}
	}
}

// saveResult persists the last successful run to history.
func (v *View) saveResult() tea.Cmd {
	if v.result == nil || v.historyService == nil {
		return nil
	}

	rec := domain.AnalysisRecord{
		Fluid:       v.fluid,
		Temperature: v.temperature,
		Pressure:    v.pressure,
		Input:       v.input,
		Result:      *v.result,
	}
	ctx := v.ctx
	history := v.historyService

	return func() tea.Msg {
		saved, err := history.Record(ctx, rec)
		return messages.RecordSaved{Record: saved, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.AnalysisCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.result = nil
		return
	}
	result := msg.Result
	v.result = &result
	v.input = msg.Input
	v.err = nil
}

// Result returns the last successful result, or nil.
func (v *View) Result() *domain.FlowResult {
	return v.result
}

// Err returns the last error, or nil.
func (v *View) Err() error {
	return v.err
}

// View renders the form and, when available, the results panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Pipe Flow Analysis"))
	b.WriteString("\n\n")

	for i := range v.inputs {
		label := v.styles.Label.Render(labels[i])
		cursor := "  "
		if i == v.focused {
			cursor = "> "
		}
		b.WriteString(cursor + label + " " + v.inputs[i].View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	if v.result != nil {
		b.WriteString("\n")
		b.WriteString(v.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[Tab] Next field  [Ctrl+R] Run  [Ctrl+S] Save  [Esc] Back"))

	return b.String()
}

func (v *View) renderResult() string {
	r := v.result
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Results"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(" ")
		b.WriteString(v.styles.Value.Render(value))
		b.WriteString("\n")
	}

	row("Velocity", fmt.Sprintf("%.4g m/s", r.Velocity))
	row("Reynolds number", fmt.Sprintf("%.4g", r.Reynolds))
	row("Friction factor", fmt.Sprintf("%.5g (%s)", r.Friction.Value, r.Friction.Method))
	if !r.Friction.Converged {
		b.WriteString(v.styles.Warning.Render(
			fmt.Sprintf("  solver did not converge after %d iterations (residual %.2g)",
				r.Friction.Iterations, r.Friction.Residual)))
		b.WriteString("\n")
	}
	row("Major head loss", fmt.Sprintf("%.4g m", r.MajorHead))
	row("Minor head loss", fmt.Sprintf("%.4g m", r.MinorHead))
	row("Total head loss", fmt.Sprintf("%.4g m", r.TotalHead))
	row("Pressure drop", fmt.Sprintf("%.4g Pa", r.PressureDrop))

	if v.saved != "" {
		b.WriteString(v.styles.Success.Render("Saved as " + v.saved))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
