package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// Fallback defaults when neither flag nor config supplies a value.
const (
	defaultFluid       = "Water"
	defaultTemperature = 300.0  // K
	defaultPressure    = 101325 // Pa
	defaultRoughness   = 1e-5   // m
)

var (
	analyzeFluid       string
	analyzeMode        string
	analyzeFlowRate    float64
	analyzeVelocity    float64
	analyzeDiameter    float64
	analyzeLength      float64
	analyzeRoughness   float64
	analyzeTemperature float64
	analyzePressure    float64
	analyzeKTotal      float64
	analyzeJSON        bool
	analyzeSave        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a pipe-flow analysis",
	Long: `Computes Reynolds number, Darcy friction factor, head losses and
pressure drop for a single pipe run.

Provide either a flow rate (--mode Q with --flow-rate) or a mean
velocity (--mode V with --velocity). Fluid properties are looked up
in the property database at the given pressure and temperature.`,
	Example: `  pipeflow analyze --fluid Water --mode Q -Q 0.01 -D 0.05 -L 10
  pipeflow analyze --mode V -V 2.5 -D 0.1 -L 25 -K 1.5 --json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFluid, "fluid", "", "fluid name (default from config, else Water)")
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "Q", "flow input mode: Q (flow rate) or V (velocity)")
	analyzeCmd.Flags().Float64VarP(&analyzeFlowRate, "flow-rate", "Q", 0, "volumetric flow rate [m3/s]")
	analyzeCmd.Flags().Float64VarP(&analyzeVelocity, "velocity", "V", 0, "mean velocity [m/s]")
	analyzeCmd.Flags().Float64VarP(&analyzeDiameter, "diameter", "D", 0, "pipe internal diameter [m]")
	analyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", 0, "pipe length [m]")
	analyzeCmd.Flags().Float64VarP(&analyzeRoughness, "roughness", "e", defaultRoughness, "absolute wall roughness [m]")
	analyzeCmd.Flags().Float64VarP(&analyzeTemperature, "temperature", "T", 0, "lookup temperature [K]")
	analyzeCmd.Flags().Float64VarP(&analyzePressure, "pressure", "P", 0, "lookup pressure [Pa]")
	analyzeCmd.Flags().Float64VarP(&analyzeKTotal, "k-total", "K", 0, "summed minor loss coefficient")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "save the analysis to history")

	_ = analyzeCmd.MarkFlagRequired("diameter")
	_ = analyzeCmd.MarkFlagRequired("length")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analysisService == nil || propertyService == nil {
		return errors.New("analysis service not configured")
	}

	fluid, temperature, pressure := lookupDefaults(cmd)

	flow, err := flowSpecFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()

	props, err := propertyService.Lookup(ctx, fluid, pressure, temperature)
	if err != nil {
		return fmt.Errorf("fluid property lookup failed: %w", err)
	}

	in := domain.AnalysisInput{
		Fluid: props.State(),
		Pipe: domain.PipeGeometry{
			Diameter:  analyzeDiameter,
			Length:    analyzeLength,
			Roughness: analyzeRoughness,
		},
		Flow:                 flow,
		MinorLossCoefficient: analyzeKTotal,
	}

	result, err := analysisService.Analyze(ctx, in)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeSave {
		if historyService == nil {
			return errors.New("history service not configured")
		}
		rec, err := historyService.Record(ctx, domain.AnalysisRecord{
			Fluid:       fluid,
			Temperature: temperature,
			Pressure:    pressure,
			Input:       in,
			Result:      result,
		})
		if err != nil {
			return fmt.Errorf("saving analysis: %w", err)
		}
		cmd.Printf("Saved as %s\n", rec.ID)
	}

	if analyzeJSON {
		return outputResultJSON(cmd, result)
	}
	outputResultText(cmd, fluid, pressure, temperature, result)
	return nil
}

// lookupDefaults resolves the fluid and lookup state, preferring flags,
// then the config file, then the built-in defaults.
func lookupDefaults(cmd *cobra.Command) (fluid string, temperature, pressure float64) {
	fluid = analyzeFluid
	if fluid == "" && configStore != nil {
		fluid = configStore.GetString(file.KeyDefaultFluid)
	}
	if fluid == "" {
		fluid = defaultFluid
	}

	temperature = analyzeTemperature
	if !cmd.Flags().Changed("temperature") {
		if configStore != nil && configStore.GetFloat(file.KeyDefaultTemperature) > 0 {
			temperature = configStore.GetFloat(file.KeyDefaultTemperature)
		} else {
			temperature = defaultTemperature
		}
	}

	pressure = analyzePressure
	if !cmd.Flags().Changed("pressure") {
		if configStore != nil && configStore.GetFloat(file.KeyDefaultPressure) > 0 {
			pressure = configStore.GetFloat(file.KeyDefaultPressure)
		} else {
			pressure = defaultPressure
		}
	}
	return fluid, temperature, pressure
}

// flowSpecFromFlags maps --mode/--flow-rate/--velocity onto a FlowSpec,
// rejecting missing or contradictory combinations.
func flowSpecFromFlags(cmd *cobra.Command) (domain.FlowSpec, error) {
	mode := domain.FlowMode(analyzeMode)
	if !mode.IsValid() {
		return domain.FlowSpec{}, fmt.Errorf("%w: mode must be Q or V, got %q", domain.ErrInvalidInput, analyzeMode)
	}

	rateSet := cmd.Flags().Changed("flow-rate")
	velocitySet := cmd.Flags().Changed("velocity")
	if rateSet && velocitySet {
		return domain.FlowSpec{}, fmt.Errorf("%w: provide --flow-rate or --velocity, not both", domain.ErrInvalidInput)
	}

	switch mode {
	case domain.FlowModeRate:
		if !rateSet {
			return domain.FlowSpec{}, fmt.Errorf("%w: --flow-rate is required for mode Q", domain.ErrInvalidInput)
		}
		return domain.FlowRateSpec(analyzeFlowRate), nil
	default:
		if !velocitySet {
			return domain.FlowSpec{}, fmt.Errorf("%w: --velocity is required for mode V", domain.ErrInvalidInput)
		}
		return domain.VelocitySpec(analyzeVelocity), nil
	}
}

func outputResultJSON(cmd *cobra.Command, result domain.FlowResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultText(cmd *cobra.Command, fluid string, pressure, temperature float64, result domain.FlowResult) {
	cmd.Printf("Fluid: %s, P=%g Pa, T=%g K\n", fluid, pressure, temperature)
	cmd.Printf("Re:                 %.3e\n", result.Reynolds)
	cmd.Printf("Friction factor f:  %.6f (%s)\n", result.Friction.Value, result.Friction.Method.Description())
	if !result.Friction.Converged {
		cmd.Printf("  warning: iteration hit its cap, value is best effort (residual %.2e)\n", result.Friction.Residual)
	}
	cmd.Printf("Velocity V:         %.4f m/s\n", result.Velocity)
	cmd.Printf("Head loss (major):  %.6f m\n", result.MajorHead)
	cmd.Printf("Head loss (minor):  %.6f m\n", result.MinorHead)
	cmd.Printf("Total head:         %.6f m\n", result.TotalHead)
	cmd.Printf("Pressure drop:      %.2f Pa\n", result.PressureDrop)
}
