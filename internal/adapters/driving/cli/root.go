// Package cli implements the cobra command tree for pipeflow.
// It is a driving adapter: commands consume the core services through
// the driving ports only.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pipeflow-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Persistent flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Services the commands consume, injected by the composition root.
var (
	analysisService driving.AnalysisService
	propertyService driving.PropertyService
	moodyService    driving.MoodyService
	historyService  driving.HistoryService
	configStore     driven.ConfigStore
)

// Services aggregates the driving ports the CLI needs.
type Services struct {
	// Analysis runs pipe-flow analyses.
	Analysis driving.AnalysisService

	// Properties resolves fluid properties.
	Properties driving.PropertyService

	// Moody produces friction-factor curves.
	Moody driving.MoodyService

	// History manages saved analyses.
	History driving.HistoryService
}

// SetupFunc builds the services once persistent flags are parsed.
// It receives the --config-dir and --data-dir values (empty means the
// per-user defaults).
type SetupFunc func(configDir, dataDir string) (Services, driven.ConfigStore, error)

var setupFunc SetupFunc

var rootCmd = &cobra.Command{
	Use:   "pipeflow",
	Short: "Steady incompressible pipe-flow hydraulics",
	Long: `pipeflow computes steady, incompressible, single-phase pipe flow
hydraulics: Reynolds number, Darcy friction factor, mean velocity,
major and minor head losses, and pressure drop.

Fluid properties come from the bundled property database; all
quantities are SI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.pipeflow)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.pipeflow/data)")
}

// setup runs after flag parsing and before any command.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	// Already wired (tests inject services directly).
	if analysisService != nil || setupFunc == nil {
		return nil
	}

	services, cfg, err := setupFunc(configDir, dataDir)
	if err != nil {
		return err
	}
	SetServices(services)
	configStore = cfg
	return nil
}

// SetServices injects the driving ports the commands use.
func SetServices(s Services) {
	analysisService = s.Analysis
	propertyService = s.Properties
	moodyService = s.Moody
	historyService = s.History
}

// SetConfigStore injects the configuration store used for defaults.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetSetup registers the deferred service constructor. The composition
// root uses this so stores open only after --config-dir/--data-dir are
// known.
func SetSetup(fn SetupFunc) {
	setupFunc = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
