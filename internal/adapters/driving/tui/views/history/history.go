// Package history provides the saved analyses view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// listLimit caps how many records the view loads at once.
const listLimit = 50

// View represents the saved analyses view.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService
	ctx            context.Context

	records  []domain.AnalysisRecord
	selected int
	expanded bool

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		historyService: historyService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the saved records.
func (v *View) Init() tea.Cmd {
	return v.loadRecords()
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.records = msg.Records
		v.err = nil
		if v.selected >= len(v.records) {
			v.selected = 0
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if v.expanded {
			v.expanded = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
		}
		return v, nil

	case "enter":
		if len(v.records) > 0 {
			v.expanded = !v.expanded
		}
		return v, nil

	case "d":
		return v, v.deleteSelected()

	case "r":
		return v, v.loadRecords()
	}

	return v, nil
}

// loadRecords fetches the newest records from the history service.
func (v *View) loadRecords() tea.Cmd {
	if v.historyService == nil {
		return nil
	}
	ctx := v.ctx
	history := v.historyService

	return func() tea.Msg {
		records, err := history.List(ctx, listLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// deleteSelected removes the highlighted record and reloads the list.
func (v *View) deleteSelected() tea.Cmd {
	if v.historyService == nil || v.selected >= len(v.records) {
		return nil
	}
	id := v.records[v.selected].ID
	ctx := v.ctx
	history := v.historyService

	return func() tea.Msg {
		if err := history.Delete(ctx, id); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		records, err := history.List(ctx, listLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// Records returns the loaded records.
func (v *View) Records() []domain.AnalysisRecord {
	return v.records
}

// View renders the record list, expanding the selected record when
// toggled.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Saved Analyses"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("No saved analyses."))
		b.WriteString("\n")
	}

	for i, rec := range v.records {
		cursor := "  "
		line := fmt.Sprintf("%s  %-10s Re=%.3g  f=%.4g  dP=%.4g Pa",
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Fluid,
			rec.Result.Reynolds,
			rec.Result.Friction.Value,
			rec.Result.PressureDrop,
		)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		}
		b.WriteString(cursor + line)
		b.WriteString("\n")

		if i == v.selected && v.expanded {
			b.WriteString(v.renderDetail(rec))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[j/k] Navigate  [Enter] Detail  [d] Delete  [r] Refresh  [Esc] Back"))

	return b.String()
}

func (v *View) renderDetail(rec domain.AnalysisRecord) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString("    ")
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(" ")
		b.WriteString(v.styles.Value.Render(value))
		b.WriteString("\n")
	}

	row("ID", rec.ID)
	row("State", fmt.Sprintf("%.4g Pa, %.4g K", rec.Pressure, rec.Temperature))
	row("Pipe", fmt.Sprintf("D=%.4g m, L=%.4g m, eps=%.3g m",
		rec.Input.Pipe.Diameter, rec.Input.Pipe.Length, rec.Input.Pipe.Roughness))
	row("Velocity", fmt.Sprintf("%.4g m/s", rec.Result.Velocity))
	row("Friction", fmt.Sprintf("%.5g (%s)", rec.Result.Friction.Value, rec.Result.Friction.Method))
	row("Total head loss", fmt.Sprintf("%.4g m", rec.Result.TotalHead))
	row("Pressure drop", fmt.Sprintf("%.4g Pa", rec.Result.PressureDrop))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
