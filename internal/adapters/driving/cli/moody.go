package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/chart"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

var (
	moodyRelRoughness float64
	moodyMinRe        float64
	moodyMaxRe        float64
	moodyPoints       int
	moodyOpRe         float64
	moodyOpF          float64
)

var moodyCmd = &cobra.Command{
	Use:   "moody",
	Short: "Render a Moody diagram curve",
	Long: `Draws the Darcy friction factor against the Reynolds number as a
log-log terminal chart, at fixed relative roughness. Optionally marks
an operating point obtained from a previous analysis.`,
	Example: `  pipeflow moody --rel-roughness 0.0002
  pipeflow moody --rel-roughness 0.0002 --op-re 2.5e5 --op-f 0.018`,
	RunE: runMoody,
}

func init() {
	moodyCmd.Flags().Float64Var(&moodyRelRoughness, "rel-roughness", 1e-4, "relative roughness eps/D")
	moodyCmd.Flags().Float64Var(&moodyMinRe, "min-re", domain.DefaultMoodyMinReynolds, "lower Reynolds bound")
	moodyCmd.Flags().Float64Var(&moodyMaxRe, "max-re", domain.DefaultMoodyMaxReynolds, "upper Reynolds bound")
	moodyCmd.Flags().IntVar(&moodyPoints, "points", domain.DefaultMoodyPoints, "number of curve samples")
	moodyCmd.Flags().Float64Var(&moodyOpRe, "op-re", 0, "operating point Reynolds number")
	moodyCmd.Flags().Float64Var(&moodyOpF, "op-f", 0, "operating point friction factor")

	rootCmd.AddCommand(moodyCmd)
}

func runMoody(cmd *cobra.Command, _ []string) error {
	if moodyService == nil {
		return errors.New("moody service not configured")
	}

	points, err := moodyService.Curve(context.Background(), domain.MoodySweep{
		RelativeRoughness: moodyRelRoughness,
		MinReynolds:       moodyMinRe,
		MaxReynolds:       moodyMaxRe,
		Points:            moodyPoints,
	})
	if err != nil {
		return fmt.Errorf("computing curve: %w", err)
	}

	opts := chart.Options{
		Width:             chartWidth(),
		Height:            20,
		RelativeRoughness: moodyRelRoughness,
	}
	if moodyOpRe > 0 && moodyOpF > 0 {
		opts.Point = &chart.OperatingPoint{Reynolds: moodyOpRe, Friction: moodyOpF}
	}

	cmd.Println(chart.Moody(points, opts))
	return nil
}

// chartWidth sizes the chart to the terminal, with margin for the
// y-axis labels. Falls back to 80 columns when stdout is not a tty.
func chartWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 20 {
		return 80
	}
	return width - 12
}
