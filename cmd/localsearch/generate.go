package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/localsearch/internal/rng"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		prefix  string
		minSize int
		maxSize int
		seed    int64
	)
	cmd := &cobra.Command{
		Use:       "generate <problem>",
		Short:     "Write random instances <prefix>_<size>.json for every size in range",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: problemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := lookupProblem(args[0])
			if err != nil {
				return err
			}
			if minSize < 1 || maxSize < minSize {
				return fmt.Errorf("invalid size range [%d, %d]", minSize, maxSize)
			}

			r := rng.New(seed)
			for n := minSize; n <= maxSize; n++ {
				path := fmt.Sprintf("%s_%d.json", prefix, n)
				err := writeFile(path, func(w io.Writer) error { return pr.generate(n, r, w) })
				if err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
			a.logger.Info("instances generated",
				zap.String("problem", args[0]),
				zap.String("prefix", prefix),
				zap.Int("count", maxSize-minSize+1),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d instances written to %s_*.json\n", maxSize-minSize+1, prefix)
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "output", "o", "instance", "Output path prefix")
	cmd.Flags().IntVar(&minSize, "min-size", 1, "Smallest instance size")
	cmd.Flags().IntVar(&maxSize, "max-size", 100, "Largest instance size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generator seed")
	return cmd
}
