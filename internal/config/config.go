// Package config loads solver parameter files (YAML) and maps them onto
// search.Options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/localsearch/search"
)

// Algorithm names accepted in parameter files and on the command line.
const (
	RestartingLocalSearch = "restarting_local_search"
	IteratedLocalSearch   = "iterated_local_search"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm name other than the two
	// drivers.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")

	// ErrInvalidTimeLimit indicates an unparsable or negative time limit.
	ErrInvalidTimeLimit = errors.New("config: invalid time limit")
)

// Parameters is the on-disk solver configuration.
type Parameters struct {
	Algorithm string `yaml:"algorithm"`
	Seed      int64  `yaml:"seed"`
	// TimeLimit is a Go duration string; "" or "0" means unbounded.
	TimeLimit string `yaml:"time_limit"`

	MaximumPoolSize              int   `yaml:"maximum_pool_size"`
	MaximumNumberOfRestarts      int   `yaml:"maximum_number_of_restarts"`
	MaximumNumberOfIterations    int   `yaml:"maximum_number_of_iterations"`
	MinimumNumberOfPerturbations int   `yaml:"minimum_number_of_perturbations"`
	InitialSolutionIDs           []int `yaml:"initial_solution_ids,omitempty"`

	// NumberOfKicks is read by the tsp scheme only.
	NumberOfKicks int `yaml:"number_of_kicks"`

	Verbose bool `yaml:"verbose"`
}

// DefaultParameters returns restarting local search with a 10 s budget.
func DefaultParameters() *Parameters {
	return &Parameters{
		Algorithm:                    RestartingLocalSearch,
		TimeLimit:                    "10s",
		MaximumPoolSize:              1,
		MinimumNumberOfPerturbations: 1,
	}
}

// Load reads a parameter file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Parameters, error) {
	p := DefaultParameters()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p as YAML, creating the parent directory if needed.
func (p *Parameters) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Duration parses TimeLimit.
func (p *Parameters) Duration() (time.Duration, error) {
	if p.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeLimit, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTimeLimit, p.TimeLimit)
	}
	return d, nil
}

// Validate checks the algorithm name and the time limit. Count limits are
// left to search.Options.Validate.
func (p *Parameters) Validate() error {
	switch p.Algorithm {
	case RestartingLocalSearch, IteratedLocalSearch:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, p.Algorithm)
	}
	_, err := p.Duration()
	return err
}

// Apply copies p onto opts and validates the result.
func Apply[S any](p *Parameters, opts *search.Options[S]) error {
	d, err := p.Duration()
	if err != nil {
		return err
	}
	opts.Seed = p.Seed
	opts.TimeLimit = d
	opts.MaximumPoolSize = p.MaximumPoolSize
	opts.MaximumNumberOfRestarts = p.MaximumNumberOfRestarts
	opts.MaximumNumberOfIterations = p.MaximumNumberOfIterations
	opts.MinimumNumberOfPerturbations = p.MinimumNumberOfPerturbations
	opts.InitialSolutionIDs = append([]int(nil), p.InitialSolutionIDs...)
	opts.Verbose = p.Verbose
	return opts.Validate()
}
