// Package chart renders friction-factor curves as terminal charts.
// It is shared by the moody CLI command and the TUI moody view, and
// consumes only the public Moody sweep output.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// OperatingPoint is an optional (Re, f) marker drawn on the curve.
type OperatingPoint struct {
	Reynolds float64
	Friction float64
}

// Options configures the rendered chart.
type Options struct {
	// Width is the chart width in columns. Non-positive means 80.
	Width int

	// Height is the chart height in rows. Non-positive means 20.
	Height int

	// Point marks an operating point on the curve, if non-nil.
	Point *OperatingPoint

	// RelativeRoughness labels the curve's eps/D.
	RelativeRoughness float64
}

// Moody renders a friction-factor-vs-Reynolds curve as a log-log
// terminal chart. Both axes are plotted as log10; the caption spells
// that out.
func Moody(points []domain.MoodyPoint, opts Options) string {
	if len(points) == 0 {
		return "no curve data"
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	height := opts.Height
	if height <= 0 {
		height = 20
	}

	curve := make([]float64, len(points))
	for i, p := range points {
		curve[i] = math.Log10(p.Friction)
	}

	series := [][]float64{curve}
	if opts.Point != nil {
		series = append(series, markerSeries(points, *opts.Point))
	}

	caption := fmt.Sprintf("log10(f) vs log10(Re), eps/D = %g  [Re %.1e..%.1e]",
		opts.RelativeRoughness, points[0].Reynolds, points[len(points)-1].Reynolds)

	graph := asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)

	var b strings.Builder
	b.WriteString(graph)
	if opts.Point != nil {
		b.WriteString(fmt.Sprintf("\nOperating point: Re = %.3e, f = %.5f\n", opts.Point.Reynolds, opts.Point.Friction))
	}
	return b.String()
}

// markerSeries builds a series that is NaN everywhere except at the
// sweep sample closest to the operating point; asciigraph draws NaN as
// gaps, so only the marker shows.
func markerSeries(points []domain.MoodyPoint, op OperatingPoint) []float64 {
	marker := make([]float64, len(points))
	nearest, best := 0, math.Inf(1)
	for i, p := range points {
		marker[i] = math.NaN()
		d := math.Abs(math.Log10(p.Reynolds) - math.Log10(op.Reynolds))
		if d < best {
			best = d
			nearest = i
		}
	}
	marker[nearest] = math.Log10(op.Friction)
	return marker
}
