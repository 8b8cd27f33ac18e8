package search

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for driver configuration.
var (
	// ErrNilScheme indicates the driver was given no capability.
	ErrNilScheme = errors.New("search: local scheme is nil")

	// ErrInvalidPoolSize indicates a negative MaximumPoolSize.
	ErrInvalidPoolSize = errors.New("search: maximum pool size must be >= 1")

	// ErrNegativeLimit indicates a negative restart, iteration or
	// perturbation count.
	ErrNegativeLimit = errors.New("search: counts must be non-negative")

	// ErrNegativeTimeLimit indicates TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("search: time limit must be non-negative")

	// ErrArityMismatch indicates two Global Costs of different arity in one
	// run, or an empty cost.
	ErrArityMismatch = errors.New("search: global cost arity mismatch")
)

// Options configures rls.Run and ils.Run.
//
// Zero-valued limits mean "unbounded". MaximumNumberOfIterations and
// MinimumNumberOfPerturbations are read by ils only.
type Options[S any] struct {
	// MaximumPoolSize bounds the solution pool. 0 ⇒ 1.
	MaximumPoolSize int

	// MaximumNumberOfRestarts stops the driver once this many restarts have
	// run. 0 ⇒ unbounded.
	MaximumNumberOfRestarts int

	// MaximumNumberOfIterations stops ils once this many perturbations have
	// been explored. 0 ⇒ unbounded.
	MaximumNumberOfIterations int

	// MinimumNumberOfPerturbations is how many perturbations ils explores at
	// the current depth before it may adopt an improving escape.
	MinimumNumberOfPerturbations int

	// Seed belongs to the caller's own random source; the drivers only
	// report it.
	Seed int64

	// InitialSolutionIDs are handed to LocalScheme.InitialSolution.
	InitialSolutionIDs []int

	// InitialSolutions are pre-built starting points, used after the ids.
	// The drivers clone them before optimizing, so the caller's values are
	// never mutated.
	InitialSolutions []S

	// NewSolutionCallback is invoked synchronously with every solution the
	// pool reports as a new best.
	NewSolutionCallback func(S)

	// TimeLimit is the wall-clock budget, checked once per restart.
	// 0 ⇒ unbounded.
	TimeLimit time.Duration

	// Verbose enables narration when Logger is nil.
	Verbose bool

	// Logger receives the narration. Takes precedence over Verbose.
	Logger *zap.Logger
}

// DefaultOptions returns the documented defaults: pool size 1, one
// perturbation before deepening, everything else unbounded, narration off.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{
		MaximumPoolSize:              1,
		MinimumNumberOfPerturbations: 1,
	}
}

// Validate checks the options for caller configuration errors.
//
// Complexity: O(1).
func (o Options[S]) Validate() error {
	if o.MaximumPoolSize < 0 {
		return ErrInvalidPoolSize
	}
	if o.MaximumNumberOfRestarts < 0 ||
		o.MaximumNumberOfIterations < 0 ||
		o.MinimumNumberOfPerturbations < 0 {
		return ErrNegativeLimit
	}
	if o.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	return nil
}

// normalized applies the zero-value defaults. The returned copy owns its
// id slice so defaulting never writes into the caller's backing array.
func (o Options[S]) normalized() Options[S] {
	if o.MaximumPoolSize == 0 {
		o.MaximumPoolSize = 1
	}
	if len(o.InitialSolutionIDs) == 0 && len(o.InitialSolutions) == 0 {
		o.InitialSolutionIDs = []int{0}
	} else {
		o.InitialSolutionIDs = append([]int(nil), o.InitialSolutionIDs...)
	}
	return o
}
