package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/views/analysis"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/tui/views/moody"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shown in the help view.
	keymap *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// analysisView is the analysis form and results view.
	analysisView *analysis.View

	// moodyView is the friction-factor diagram view.
	moodyView *moody.View

	// historyView is the saved analyses view.
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       keymap.DefaultKeyMap(),
		menuView:     menu.NewView(s),
		analysisView: analysis.NewView(s, ports.Analysis, ports.Properties, ports.History),
		moodyView:    moody.NewView(s, ports.Moody),
		historyView:  history.NewView(s, ports.History),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and all views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.analysisView.WithContext(ctx)
	a.moodyView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pipeflow - Pipe Flow Hydraulics"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.analysisView.SetDimensions(msg.Width, msg.Height)
		a.moodyView.SetDimensions(msg.Width, msg.Height)
		a.historyView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewAnalysis:
			a.analysisView, cmd = a.analysisView.Update(msg)
			a.err = a.analysisView.Err()
			return a, cmd

		case messages.ViewMoody:
			a.moodyView, cmd = a.moodyView.Update(msg)
			return a, cmd

		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.AnalysisCompleted:
		a.analysisView, cmd = a.analysisView.Update(msg)
		a.err = a.analysisView.Err()
		if msg.Err == nil {
			// Push the operating point onto the moody view's curve.
			point := messages.OperatingPointSet{
				Reynolds:          msg.Result.Reynolds,
				Friction:          msg.Result.Friction.Value,
				RelativeRoughness: msg.Input.Pipe.RelativeRoughness(),
			}
			a.moodyView, _ = a.moodyView.Update(point)
		}
		return a, cmd

	case messages.RecordSaved:
		a.analysisView, cmd = a.analysisView.Update(msg)
		return a, cmd

	case messages.CurveComputed, messages.OperatingPointSet:
		a.moodyView, cmd = a.moodyView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewAnalysis:
			return a, a.analysisView.Init()
		case messages.ViewMoody:
			return a, a.moodyView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No special initialisation
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewAnalysis:
			a.analysisView, cmd = a.analysisView.Update(msg)
		case messages.ViewMoody:
			a.moodyView, cmd = a.moodyView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Error shown by the next view render
		}
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
// It renders the currently active view.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewAnalysis:
		return a.analysisView.View()
	case messages.ViewMoody:
		return a.moodyView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.helpView()
	default:
		return a.menuView.View()
	}
}

// helpView renders the keybinding reference.
func (a *App) helpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		lines []string
	}{
		{"Navigation", []string{
			"↑/k, ↓/j    Move selection",
			"Tab         Next form field",
			"Enter       Select / advance",
			"Esc         Back to menu",
		}},
		{"Analysis", []string{
			"Ctrl+R      Run the analysis",
			"Ctrl+S      Save the result to history",
		}},
		{"Moody diagram", []string{
			"Enter       Recompute the curve",
		}},
		{"History", []string{
			"Enter       Expand / collapse a record",
			"d           Delete the selected record",
			"r           Refresh",
		}},
		{"General", []string{
			"?           This help",
			"q, Ctrl+C   Quit",
		}},
	}

	for _, section := range sections {
		b.WriteString(a.styles.Subtitle.Render(section.title))
		b.WriteString("\n")
		for _, line := range section.lines {
			b.WriteString("  " + a.styles.Normal.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("[Esc] Back"))

	return b.String()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}
