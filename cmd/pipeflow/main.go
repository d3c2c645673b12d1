// Command pipeflow is the entry point for the pipe-flow hydraulics CLI.
// It wires the driven adapters (property database, history store,
// config file) into the core services and hands them to the cobra
// command tree.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pipeflow-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pipeflow-cli/internal/core/services"
	"github.com/custodia-labs/pipeflow-cli/internal/logger"
)

func main() {
	cli.SetSetup(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices constructs the full service graph. It runs after
// persistent flags are parsed so --config-dir and --data-dir are
// honoured.
func buildServices(configDir, dataDir string) (cli.Services, driven.ConfigStore, error) {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("opening data store: %w", err)
	}
	logger.Debug("data store: %s", store.Path())

	solver := solverFromConfig(cfg)

	losses := services.NewHeadLossModel()
	if g := cfg.GetFloat(file.KeyGravity); g > 0 {
		losses = services.NewHeadLossModelWithGravity(g)
	}

	return cli.Services{
		Analysis:   services.NewAnalysisService(solver, losses),
		Properties: services.NewPropertyService(store.PropertyStore()),
		Moody:      services.NewMoodyService(solver),
		History:    services.NewHistoryService(store.AnalysisStore()),
	}, cfg, nil
}

// solverFromConfig applies any solver overrides from the config file on
// top of the built-in defaults.
func solverFromConfig(cfg driven.ConfigStore) *services.FrictionSolver {
	solver := services.NewFrictionSolver()

	if v := cfg.GetFloat(file.KeySolverTolerance); v > 0 {
		solver.Tolerance = v
	}
	if v := cfg.GetInt(file.KeySolverMaxIterations); v > 0 {
		solver.MaxIterations = v
	}
	if v := cfg.GetFloat(file.KeySolverSeed); v > 0 {
		solver.Seed = v
	}
	solver.Strict = cfg.GetBool(file.KeySolverStrict)

	return solver
}
