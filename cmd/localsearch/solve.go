package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/localsearch/internal/config"
)

// solveFlags are the per-command overrides of the parameter file.
type solveFlags struct {
	instance    string
	certificate string
	algorithm   string
	timeLimit   string
	seed        int64
	restarts    int
	iterations  int
	poolSize    int
	kicks       int
}

func (f *solveFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.algorithm, "algorithm", "a", config.RestartingLocalSearch,
		"restarting_local_search | iterated_local_search")
	fs.StringVarP(&f.timeLimit, "time-limit", "t", "10s", "Wall-clock budget (0 = unbounded)")
	fs.Int64Var(&f.seed, "seed", 0, "Seed for initial solutions and kicks")
	fs.IntVar(&f.restarts, "restarts", 0, "Maximum number of restarts (0 = unbounded)")
	fs.IntVar(&f.iterations, "iterations", 0, "Maximum number of ILS iterations (0 = unbounded)")
	fs.IntVar(&f.poolSize, "pool-size", 1, "Maximum solution pool size")
	fs.IntVar(&f.kicks, "kicks", 0, "Double-bridge kicks per ILS step, tsp only (0 = one per location)")
}

// override copies the flags the user set explicitly onto p.
func (f *solveFlags) override(fs *pflag.FlagSet, p *config.Parameters) error {
	if fs.Changed("algorithm") {
		p.Algorithm = f.algorithm
	}
	if fs.Changed("time-limit") {
		p.TimeLimit = f.timeLimit
	}
	if fs.Changed("seed") {
		p.Seed = f.seed
	}
	if fs.Changed("restarts") {
		p.MaximumNumberOfRestarts = f.restarts
	}
	if fs.Changed("iterations") {
		p.MaximumNumberOfIterations = f.iterations
	}
	if fs.Changed("pool-size") {
		p.MaximumPoolSize = f.poolSize
	}
	if fs.Changed("kicks") {
		p.NumberOfKicks = f.kicks
	}
	return p.Validate()
}

func (a *app) newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:       "solve <problem>",
		Short:     "Solve an instance and optionally write a certificate",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: problemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := lookupProblem(args[0])
			if err != nil {
				return err
			}
			p, err := a.parameters()
			if err != nil {
				return err
			}
			if err := f.override(cmd.Flags(), p); err != nil {
				return err
			}

			res, err := pr.solve(f.instance, p, a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Algorithm:            %s\n", p.Algorithm)
			fmt.Fprintf(out, "Value:                %s\n", res.Value)
			fmt.Fprintf(out, "Number of restarts:   %d\n", res.Restarts)
			if p.Algorithm == config.IteratedLocalSearch {
				fmt.Fprintf(out, "Number of iterations: %d\n", res.Iterations)
				fmt.Fprintf(out, "Maximum depth:        %d\n", res.Depth)
			}
			fmt.Fprintf(out, "Time:                 %s\n", res.Elapsed)

			if f.certificate == "" {
				return nil
			}
			if err := writeFile(f.certificate, res.writeCertificate); err != nil {
				return err
			}
			data, err := os.ReadFile(f.certificate)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			return pr.check(f.instance, data, out)
		},
	}
	cmd.Flags().StringVarP(&f.instance, "instance", "i", "", "Instance JSON file (required)")
	cmd.Flags().StringVarP(&f.certificate, "certificate", "c", "", "Write the best solution here and check it")
	_ = cmd.MarkFlagRequired("instance")
	f.register(cmd.Flags())
	return cmd
}
