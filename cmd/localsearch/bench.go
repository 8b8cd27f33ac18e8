package main

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// benchJob is one (instance, seed) run.
type benchJob struct {
	instance string
	seed     int64
	runID    string
	result   outcome
}

func (a *app) newBenchCmd() *cobra.Command {
	var (
		f         = &solveFlags{}
		instances []string
		seeds     int
		jobs      int
	)
	cmd := &cobra.Command{
		Use:       "bench <problem>",
		Short:     "Solve several instances under several seeds concurrently",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: problemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := lookupProblem(args[0])
			if err != nil {
				return err
			}
			if seeds < 1 {
				return fmt.Errorf("--seeds must be >= 1, got %d", seeds)
			}
			p, err := a.parameters()
			if err != nil {
				return err
			}
			if err := f.override(cmd.Flags(), p); err != nil {
				return err
			}

			runs := make([]*benchJob, 0, len(instances)*seeds)
			for _, path := range instances {
				for k := 0; k < seeds; k++ {
					runs = append(runs, &benchJob{instance: path, seed: p.Seed + int64(k), runID: uuid.NewString()})
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(max(1, jobs))
			for _, job := range runs {
				job := job
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					params := *p
					params.Seed = job.seed
					params.InitialSolutionIDs = slices.Clone(p.InitialSolutionIDs)

					log := a.logger.With(
						zap.String("run_id", job.runID),
						zap.String("instance", job.instance),
						zap.Int64("seed", job.seed),
					)
					res, err := pr.solve(job.instance, &params, log)
					if err != nil {
						return fmt.Errorf("%s (seed %d): %w", job.instance, job.seed, err)
					}
					job.result = res
					log.Debug("run done", zap.String("value", res.Value))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INSTANCE\tSEED\tVALUE\tRESTARTS\tITERATIONS\tTIME\tRUN")
			for _, job := range runs {
				r := job.result
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%s\t%s\n",
					job.instance, job.seed, r.Value, r.Restarts, r.Iterations, r.Elapsed, job.runID[:8])
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringArrayVarP(&instances, "instance", "i", nil, "Instance JSON file (repeatable, required)")
	cmd.Flags().IntVar(&seeds, "seeds", 1, "Number of consecutive seeds per instance")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Concurrent runs")
	_ = cmd.MarkFlagRequired("instance")
	f.register(cmd.Flags())
	return cmd
}
