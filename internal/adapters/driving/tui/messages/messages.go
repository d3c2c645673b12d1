// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// AnalysisCompleted carries an analysis outcome back to the model.
type AnalysisCompleted struct {
	Input  domain.AnalysisInput
	Result domain.FlowResult
	Fluid  string
	Err    error
}

// CurveComputed carries a friction-factor sweep back to the moody view.
type CurveComputed struct {
	Sweep  domain.MoodySweep
	Points []domain.MoodyPoint
	Err    error
}

// HistoryLoaded carries saved records back to the history view.
type HistoryLoaded struct {
	Records []domain.AnalysisRecord
	Err     error
}

// RecordSaved is sent after an analysis record has been persisted.
type RecordSaved struct {
	Record domain.AnalysisRecord
	Err    error
}

// OperatingPointSet positions the marker on the moody view's curve.
type OperatingPointSet struct {
	Reynolds          float64
	Friction          float64
	RelativeRoughness float64
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred reports an error to the active view.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAnalysis is the analysis input form and results view.
	ViewAnalysis
	// ViewMoody is the friction-factor diagram view.
	ViewMoody
	// ViewHistory is the saved analyses view.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAnalysis:
		return "analysis"
	case ViewMoody:
		return "moody"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
