package pool

import (
	"errors"

	"github.com/katalvlaran/localsearch/cost"
)

// Sentinel errors for pool construction.
var (
	// ErrInvalidSize indicates a maximum size below 1.
	ErrInvalidSize = errors.New("pool: maximum size must be >= 1")

	// ErrNilFunc indicates a nil cost or equality function.
	ErrNilFunc = errors.New("pool: cost and equality functions must be non-nil")
)

// Status is the outcome of Add.
type Status int

const (
	// Rejected means the pool is unchanged.
	Rejected Status = iota
	// Added means the solution is now resident.
	Added
	// AddedNewBest means the solution is resident and is the new best.
	AddedNewBest
)

// String returns a lowercase label for s.
func (s Status) String() string {
	switch s {
	case Rejected:
		return "rejected"
	case Added:
		return "added"
	case AddedNewBest:
		return "added-new-best"
	default:
		return "unknown"
	}
}

// Stats counts Add outcomes over the lifetime of a pool.
type Stats struct {
	Offered  int
	Added    int // includes new-best additions
	NewBest  int
	Rejected int
}

// entry caches the cost of a resident solution. Resident solutions are
// never mutated by the drivers, so the cached cost stays valid.
type entry[S any] struct {
	sol  S
	cost cost.Cost
}

// Pool is a bounded elite archive. Create it with New.
type Pool[S any] struct {
	maximumSize int
	costOf      func(S) cost.Cost
	equal       func(a, b S) bool

	entries []entry[S]
	worst   int // index into entries; meaningful only when entries is non-empty

	best     S
	bestCost cost.Cost
	hasBest  bool

	stats Stats
}

// New returns an empty pool holding at most maximumSize solutions.
// costOf and equal are usually a LocalScheme's GlobalCost and Equal.
//
// Complexity: O(maximumSize) space reserved up front.
func New[S any](maximumSize int, costOf func(S) cost.Cost, equal func(a, b S) bool) (*Pool[S], error) {
	if maximumSize < 1 {
		return nil, ErrInvalidSize
	}
	if costOf == nil || equal == nil {
		return nil, ErrNilFunc
	}
	return &Pool[S]{
		maximumSize: maximumSize,
		costOf:      costOf,
		equal:       equal,
		entries:     make([]entry[S], 0, maximumSize+1),
	}, nil
}

// Add offers s to the pool. See the package documentation for the protocol.
//
// Complexity: O(size) cost comparisons and equality checks.
func (p *Pool[S]) Add(s S) Status {
	p.stats.Offered++
	c := p.costOf(s)

	// A full pool never gets worse.
	if len(p.entries) >= p.maximumSize && !c.Less(p.entries[p.worst].cost) {
		p.stats.Rejected++
		return Rejected
	}
	// No duplicates.
	for i := range p.entries {
		if p.equal(s, p.entries[i].sol) {
			p.stats.Rejected++
			return Rejected
		}
	}

	p.entries = append(p.entries, entry[S]{sol: s, cost: c})

	newBest := false
	if !p.hasBest || c.Less(p.bestCost) {
		p.best, p.bestCost, p.hasBest = s, c, true
		newBest = true
	}

	// Overflow: evict the flagged worst by position, swap-with-last and pop.
	if len(p.entries) > p.maximumSize {
		last := len(p.entries) - 1
		p.entries[p.worst] = p.entries[last]
		p.entries[last] = entry[S]{}
		p.entries = p.entries[:last]
	}

	p.worst = 0
	for i := 1; i < len(p.entries); i++ {
		if p.entries[p.worst].cost.Less(p.entries[i].cost) {
			p.worst = i
		}
	}

	p.stats.Added++
	if newBest {
		p.stats.NewBest++
		return AddedNewBest
	}
	return Added
}

// Best returns the best solution ever added.
func (p *Pool[S]) Best() (S, bool) { return p.best, p.hasBest }

// BestCost returns the cost of Best.
func (p *Pool[S]) BestCost() (cost.Cost, bool) { return p.bestCost, p.hasBest }

// Worst returns the resident solution with the maximal cost.
func (p *Pool[S]) Worst() (S, bool) {
	if len(p.entries) == 0 {
		var zero S
		return zero, false
	}
	return p.entries[p.worst].sol, true
}

// WorstCost returns the cost of Worst.
func (p *Pool[S]) WorstCost() (cost.Cost, bool) {
	if len(p.entries) == 0 {
		return cost.Cost{}, false
	}
	return p.entries[p.worst].cost, true
}

// Len returns the number of resident solutions.
func (p *Pool[S]) Len() int { return len(p.entries) }

// MaximumSize returns the capacity given to New.
func (p *Pool[S]) MaximumSize() int { return p.maximumSize }

// Stats returns the Add counters.
func (p *Pool[S]) Stats() Stats { return p.stats }

// Solutions returns the resident solutions ordered from best to worst.
// Ties keep their insertion-relative order. The slice is a fresh copy.
//
// Complexity: O(size log size).
func (p *Pool[S]) Solutions() []S {
	sorted := make([]entry[S], len(p.entries))
	copy(sorted, p.entries)
	cost.SortStable(sorted, func(e entry[S]) cost.Cost { return e.cost })

	out := make([]S, len(sorted))
	for i := range sorted {
		out[i] = sorted[i].sol
	}
	return out
}
