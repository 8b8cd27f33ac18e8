package search

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/pool"
	"github.com/katalvlaran/localsearch/scheme"
)

// Output is what a driver returns when it terminates.
type Output[S any] struct {
	// Pool holds the elite solutions; Pool.Best() is the answer.
	Pool *pool.Pool[S]

	// NumberOfRestarts is the number of restarts actually performed.
	NumberOfRestarts int

	// NumberOfIterations is the number of perturbations explored (ils only).
	NumberOfIterations int

	// MaximumDepth is the deepest escape chain reached in one restart
	// (ils only).
	MaximumDepth int

	// ElapsedTime is the wall time of the whole driver call.
	ElapsedTime time.Duration
}

// Run is the state of one driver invocation.
type Run[S any, M any] struct {
	ls    scheme.LocalScheme[S, M]
	opts  Options[S]
	pool  *pool.Pool[S]
	log   *zap.Logger
	start time.Time
	arity int
}

// Start validates opts, creates the pool, and narrates the run header.
// algorithm names the driver; extra fields are appended to the header.
//
// Errors: ErrNilScheme, ErrInvalidPoolSize, ErrNegativeLimit,
// ErrNegativeTimeLimit, or a logger construction failure.
func Start[S any, M any](ls scheme.LocalScheme[S, M], opts Options[S], algorithm string, extra ...zap.Field) (*Run[S, M], error) {
	start := time.Now()
	if ls == nil {
		return nil, ErrNilScheme
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	log, err := resolveLogger(opts)
	if err != nil {
		return nil, err
	}

	p, err := pool.New(opts.MaximumPoolSize, ls.GlobalCost, ls.Equal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoolSize, err)
	}

	fields := []zap.Field{
		zap.String("algorithm", algorithm),
		limitField("maximum_number_of_restarts", opts.MaximumNumberOfRestarts),
		zap.Int64("seed", opts.Seed),
		zap.Int("maximum_pool_size", opts.MaximumPoolSize),
		zap.Int("number_of_initial_solutions", len(opts.InitialSolutionIDs)+len(opts.InitialSolutions)),
	}
	if opts.TimeLimit > 0 {
		fields = append(fields, zap.Duration("time_limit", opts.TimeLimit))
	} else {
		fields = append(fields, zap.String("time_limit", "inf"))
	}
	log.Info("local search solver", append(fields, extra...)...)

	return &Run[S, M]{
		ls:    ls,
		opts:  opts,
		pool:  p,
		log:   log,
		start: start,
	}, nil
}

// Options returns the normalized options of the run.
func (r *Run[S, M]) Options() Options[S] { return r.opts }

// Pool returns the run's solution pool.
func (r *Run[S, M]) Pool() *pool.Pool[S] { return r.pool }

// Logger returns the narration logger.
func (r *Run[S, M]) Logger() *zap.Logger { return r.log }

// Elapsed returns the wall time since Start.
func (r *Run[S, M]) Elapsed() time.Duration { return time.Since(r.start) }

// Expired reports whether the time budget is exhausted.
func (r *Run[S, M]) Expired() bool {
	return r.opts.TimeLimit > 0 && r.Elapsed() > r.opts.TimeLimit
}

// RestartsExhausted reports whether done restarts reached the configured cap.
func (r *Run[S, M]) RestartsExhausted(done int) bool {
	return r.opts.MaximumNumberOfRestarts > 0 && done >= r.opts.MaximumNumberOfRestarts
}

// NumberOfSources returns how many initial-solution sources are configured
// (always >= 1 after normalization).
func (r *Run[S, M]) NumberOfSources() int {
	return len(r.opts.InitialSolutionIDs) + len(r.opts.InitialSolutions)
}

// InitialSolution materializes source pos: seed ids first, then clones of
// the supplied solutions.
func (r *Run[S, M]) InitialSolution(pos int) S {
	ids := r.opts.InitialSolutionIDs
	if pos < len(ids) {
		return r.ls.InitialSolution(ids[pos])
	}
	return r.ls.Clone(r.opts.InitialSolutions[pos-len(ids)])
}

// Cost returns the Global Cost of s, enforcing a single arity per run.
func (r *Run[S, M]) Cost(s S) (cost.Cost, error) {
	c := r.ls.GlobalCost(s)
	if err := r.CheckArity(c); err != nil {
		return cost.Cost{}, err
	}
	return c, nil
}

// CheckArity records the arity of the first cost seen and rejects any later
// cost of a different arity.
func (r *Run[S, M]) CheckArity(c cost.Cost) error {
	if c.Len() == 0 {
		return fmt.Errorf("%w: empty cost", ErrArityMismatch)
	}
	if r.arity == 0 {
		r.arity = c.Len()
		return nil
	}
	if c.Len() != r.arity {
		return fmt.Errorf("%w: got %d components, want %d", ErrArityMismatch, c.Len(), r.arity)
	}
	return nil
}

// Offer hands a locally optimal s to the pool. On a new best it narrates
// the event (comment is only rendered then) and invokes the callback.
func (r *Run[S, M]) Offer(s S, comment func() string) (pool.Status, error) {
	c, err := r.Cost(s)
	if err != nil {
		return pool.Rejected, err
	}
	status := r.pool.Add(s)
	if status != pool.AddedNewBest {
		return status, nil
	}
	r.log.Info("new best",
		zap.Duration("time", r.Elapsed()),
		zap.Stringer("value", c),
		zap.String("comment", comment()),
	)
	if r.opts.NewSolutionCallback != nil {
		r.opts.NewSolutionCallback(s)
	}
	return status, nil
}

// Finish narrates the final statistics and assembles the Output.
func (r *Run[S, M]) Finish(restarts, iterations, depth int) Output[S] {
	out := Output[S]{
		Pool:               r.pool,
		NumberOfRestarts:   restarts,
		NumberOfIterations: iterations,
		MaximumDepth:       depth,
		ElapsedTime:        r.Elapsed(),
	}
	fields := []zap.Field{
		zap.Duration("time", out.ElapsedTime),
		zap.Int("number_of_restarts", restarts),
		zap.Int("number_of_iterations", iterations),
		zap.Int("pool_size", r.pool.Len()),
	}
	if best, ok := r.pool.BestCost(); ok {
		fields = append(fields, zap.Stringer("value", best))
	}
	r.log.Info("final statistics", fields...)
	return out
}
