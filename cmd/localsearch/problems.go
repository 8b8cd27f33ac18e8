package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/localsearch/ils"
	"github.com/katalvlaran/localsearch/internal/config"
	"github.com/katalvlaran/localsearch/rls"
	"github.com/katalvlaran/localsearch/scheme"
	"github.com/katalvlaran/localsearch/schemes/knapsack"
	"github.com/katalvlaran/localsearch/schemes/tsp"
	"github.com/katalvlaran/localsearch/search"
)

var (
	errNoSolution     = errors.New("no solution found within the limits")
	errUnknownProblem = errors.New("unknown problem")
)

// outcome is the problem-independent summary of one driver run.
type outcome struct {
	Value      string
	Restarts   int
	Iterations int
	Depth      int
	Elapsed    time.Duration

	writeCertificate func(io.Writer) error
}

// problem binds one scheme package to the CLI.
type problem struct {
	solve    func(instancePath string, p *config.Parameters, log *zap.Logger) (outcome, error)
	generate func(n int, r *rand.Rand, w io.Writer) error
	check    func(instancePath string, certificate []byte, w io.Writer) error
}

var problems = map[string]problem{
	"knapsack": {
		solve: func(path string, p *config.Parameters, log *zap.Logger) (outcome, error) {
			in, err := knapsack.ReadInstance(path)
			if err != nil {
				return outcome{}, err
			}
			k, err := knapsack.New(in, p.Seed)
			if err != nil {
				return outcome{}, err
			}
			return solveWith[*knapsack.Solution, knapsack.Move](k, p, log, knapsack.WriteCertificate)
		},
		generate: func(n int, r *rand.Rand, w io.Writer) error {
			return knapsack.Generate(n, r).Write(w)
		},
		check: func(path string, certificate []byte, w io.Writer) error {
			in, err := knapsack.ReadInstance(path)
			if err != nil {
				return err
			}
			rep, err := knapsack.Check(in, certificate)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Number of items:      %d / %d\n", rep.NumberOfItems, in.NumberOfItems())
			fmt.Fprintf(w, "Number of duplicates: %d\n", rep.NumberOfDuplicates)
			fmt.Fprintf(w, "Weight:               %d / %d\n", rep.Weight, rep.Capacity)
			fmt.Fprintf(w, "Feasible:             %t\n", rep.Feasible)
			fmt.Fprintf(w, "Profit:               %d\n", rep.Profit)
			return nil
		},
	},
	"tsp": {
		solve: func(path string, p *config.Parameters, log *zap.Logger) (outcome, error) {
			in, err := tsp.ReadInstance(path)
			if err != nil {
				return outcome{}, err
			}
			s, err := tsp.New(in, tsp.Options{Seed: p.Seed, NumberOfKicks: p.NumberOfKicks})
			if err != nil {
				return outcome{}, err
			}
			return solveWith[*tsp.Solution, tsp.Move](s, p, log, tsp.WriteCertificate)
		},
		generate: func(n int, r *rand.Rand, w io.Writer) error {
			return tsp.Generate(n, r).Write(w)
		},
		check: func(path string, certificate []byte, w io.Writer) error {
			in, err := tsp.ReadInstance(path)
			if err != nil {
				return err
			}
			rep, err := tsp.Check(in, certificate)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Number of duplicates: %d\n", rep.NumberOfDuplicates)
			fmt.Fprintf(w, "Number of locations:  %d / %d\n", rep.NumberOfLocations, in.NumberOfLocations())
			fmt.Fprintf(w, "Feasible:             %t\n", rep.Feasible)
			fmt.Fprintf(w, "Length:               %d\n", rep.Length)
			return nil
		},
	},
}

func problemNames() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupProblem(name string) (problem, error) {
	pr, ok := problems[name]
	if !ok {
		return problem{}, fmt.Errorf("%w %q (want one of %s)", errUnknownProblem, name, strings.Join(problemNames(), ", "))
	}
	return pr, nil
}

// runDriver dispatches to the driver named by p.Algorithm.
func runDriver[S any, M any](ls scheme.LocalScheme[S, M], p *config.Parameters, log *zap.Logger) (search.Output[S], error) {
	opts := search.DefaultOptions[S]()
	if err := config.Apply(p, &opts); err != nil {
		return search.Output[S]{}, err
	}
	opts.Logger = log

	switch p.Algorithm {
	case config.IteratedLocalSearch:
		return ils.Run(ls, opts)
	case config.RestartingLocalSearch:
		return rls.Run(ls, opts)
	default:
		return search.Output[S]{}, fmt.Errorf("%w: %q", config.ErrUnknownAlgorithm, p.Algorithm)
	}
}

func solveWith[S any, M any](ls scheme.LocalScheme[S, M], p *config.Parameters, log *zap.Logger, write func(io.Writer, S) error) (outcome, error) {
	out, err := runDriver(ls, p, log)
	if err != nil {
		return outcome{}, err
	}
	best, ok := out.Pool.Best()
	if !ok {
		return outcome{}, errNoSolution
	}
	value, _ := out.Pool.BestCost()
	return outcome{
		Value:      value.String(),
		Restarts:   out.NumberOfRestarts,
		Iterations: out.NumberOfIterations,
		Depth:      out.MaximumDepth,
		Elapsed:    out.ElapsedTime,
		writeCertificate: func(w io.Writer) error {
			return write(w, best)
		},
	}, nil
}
