// Command localsearch solves, generates and checks knapsack and TSP
// instances with the restarting and iterated local search drivers.
//
//	localsearch generate knapsack -o data/knapsack --max-size 100
//	localsearch solve knapsack -i data/knapsack_50.json -a iterated_local_search -c sol.json
//	localsearch check knapsack -i data/knapsack_50.json -c sol.json
//	localsearch bench tsp -i data/tsp_80.json -i data/tsp_90.json --seeds 4 -j 4
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/localsearch/internal/config"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "localsearch",
		Short: "Local search solver for knapsack and TSP instances",
		Long: `localsearch runs Restarting Local Search or Iterated Local Search on
knapsack and travelling salesman instances stored as JSON.

Solver parameters come from an optional YAML file (--config) and can be
overridden per command with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.verbose {
				cfg = zap.NewDevelopmentConfig()
				cfg.DisableStacktrace = true
				cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Narrate the search (header, new bests, final statistics)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML parameter file")

	root.AddCommand(
		a.newSolveCmd(),
		a.newGenerateCmd(),
		a.newCheckCmd(),
		a.newBenchCmd(),
	)
	return root
}

// parameters loads the parameter file, or the defaults when none is given.
func (a *app) parameters() (*config.Parameters, error) {
	if a.configPath == "" {
		return config.DefaultParameters(), nil
	}
	return config.Load(a.configPath)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
