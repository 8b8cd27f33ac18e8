package tsp

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/internal/rng"
	"github.com/katalvlaran/localsearch/scheme"
)

// MinLocationsForKicks is the smallest instance for which Perturbations
// returns double-bridge kicks.
const MinLocationsForKicks = 8

// perturbationStream selects the kick stream among the seed-derived ones;
// initial solutions use streams 0, 1, 2, ... by id.
const perturbationStream = ^uint64(0)

// ErrInvalidKicks indicates a negative NumberOfKicks.
var ErrInvalidKicks = errors.New("tsp: number of kicks must be non-negative")

// Options configures a Scheme.
type Options struct {
	// Seed drives initial tours and kick sampling.
	Seed int64

	// NumberOfKicks is how many double bridges Perturbations samples.
	// 0 ⇒ n.
	NumberOfKicks int
}

// DefaultOptions returns seed 0 and one kick per location.
func DefaultOptions() Options { return Options{} }

// Validate checks o for configuration errors.
func (o Options) Validate() error {
	if o.NumberOfKicks < 0 {
		return ErrInvalidKicks
	}
	return nil
}

// Move is a double bridge with cuts after positions P1 < P2 < P3.
type Move struct {
	P1, P2, P3 int

	added [3]edge
}

// Scheme implements scheme.LocalScheme[*Solution, Move].
type Scheme struct {
	inst  *Instance
	n     int
	dist  []int64 // dense n×n, row-major
	seed  int64
	kicks int
	r     *rand.Rand
}

var _ scheme.LocalScheme[*Solution, Move] = (*Scheme)(nil)

// New precomputes the distance matrix of inst.
//
// Complexity: O(n²) time and space.
func New(inst *Instance, opts Options) (*Scheme, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := inst.NumberOfLocations()
	if n == 0 {
		return nil, ErrEmptyInstance
	}
	dist := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := inst.Distance(i, j)
			dist[i*n+j], dist[j*n+i] = d, d
		}
	}
	kicks := opts.NumberOfKicks
	if kicks == 0 {
		kicks = n
	}
	return &Scheme{
		inst:  inst,
		n:     n,
		dist:  dist,
		seed:  opts.Seed,
		kicks: kicks,
		r:     rng.Derive(opts.Seed, perturbationStream),
	}, nil
}

// Instance returns the instance the scheme works on.
func (t *Scheme) Instance() *Instance { return t.inst }

func (t *Scheme) d(i, j int) int64 { return t.dist[i*t.n+j] }

// TourLength sums the edge lengths of a closed tour.
func (t *Scheme) TourLength(tour []int) int64 {
	var l int64
	for i := 0; i+1 < len(tour); i++ {
		l += t.d(tour[i], tour[i+1])
	}
	return l
}

// FromTour wraps a validated closed tour into a Solution.
func (t *Scheme) FromTour(tour []int) (*Solution, error) {
	if err := ValidateTour(tour, t.n); err != nil {
		return nil, err
	}
	cp := slices.Clone(tour)
	return &Solution{Tour: cp, Length: t.TourLength(cp)}, nil
}

// InitialSolution returns a uniformly shuffled tour, rotated to start at 0.
func (t *Scheme) InitialSolution(id int) *Solution {
	tour := tourFromPermutation(rng.Perm(t.n, rng.Derive(t.seed, uint64(id))))
	return &Solution{Tour: tour, Length: t.TourLength(tour)}
}

// GlobalCost is the tour length.
func (t *Scheme) GlobalCost(s *Solution) cost.Cost { return cost.Scalar(s.Length) }

// LocalSearch applies the best improving 2-opt exchange until none exists.
// When origin is set, the edges it created are never removed.
//
// Complexity: O(n²) per improving step.
func (t *Scheme) LocalSearch(s *Solution, origin *Move) {
	var forbidden []edge
	if origin != nil {
		forbidden = origin.added[:]
	}
	removable := func(a, b int) bool {
		return !slices.Contains(forbidden, newEdge(a, b))
	}

	tour, n := s.Tour, t.n
	for {
		bestI, bestJ := -1, -1
		var bestDelta int64
		for i := 0; i < n-2; i++ {
			a, b := tour[i], tour[i+1]
			if !removable(a, b) {
				continue
			}
			for j := i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // both edges touch location 0: a reversal of the whole tour
				}
				c, e := tour[j], tour[j+1]
				delta := t.d(a, c) + t.d(b, e) - t.d(a, b) - t.d(c, e)
				if delta < bestDelta && removable(c, e) {
					bestI, bestJ, bestDelta = i, j, delta
				}
			}
		}
		if bestI < 0 {
			return
		}
		reverse(tour, bestI+1, bestJ)
		s.Length += bestDelta
	}
}

// bridge returns the length change of the double bridge (p1, p2, p3) on
// tour and the three edges it creates.
func (t *Scheme) bridge(tour []int, p1, p2, p3 int) (int64, [3]edge) {
	a1, b0 := tour[p1], tour[p1+1]
	b1, c0 := tour[p2], tour[p2+1]
	c1, d0 := tour[p3], tour[p3+1]
	delta := t.d(a1, c0) + t.d(c1, b0) + t.d(b1, d0) -
		t.d(a1, b0) - t.d(b1, c0) - t.d(c1, d0)
	return delta, [3]edge{newEdge(a1, c0), newEdge(c1, b0), newEdge(b1, d0)}
}

// Perturbations samples NumberOfKicks double bridges with their exact
// resulting length. Below MinLocationsForKicks it returns nil.
func (t *Scheme) Perturbations(s *Solution) []scheme.Perturbation[Move] {
	if t.n < MinLocationsForKicks {
		return nil
	}
	out := make([]scheme.Perturbation[Move], 0, t.kicks)
	for k := 0; k < t.kicks; k++ {
		p1, p2, p3 := t.cuts()
		delta, added := t.bridge(s.Tour, p1, p2, p3)
		out = append(out, scheme.Perturbation[Move]{
			Move: Move{P1: p1, P2: p2, P3: p3, added: added},
			Cost: cost.Scalar(s.Length + delta),
		})
	}
	return out
}

// cuts draws three distinct sorted positions in [0, n-1].
func (t *Scheme) cuts() (int, int, int) {
	var p [3]int
	for i := 0; i < 3; {
		x := t.r.Intn(t.n)
		if !slices.Contains(p[:i], x) {
			p[i] = x
			i++
		}
	}
	slices.Sort(p[:])
	return p[0], p[1], p[2]
}

// ApplyMove reconnects A B C D as A C B D.
func (t *Scheme) ApplyMove(s *Solution, m Move) {
	delta, _ := t.bridge(s.Tour, m.P1, m.P2, m.P3)
	tour := s.Tour
	next := make([]int, 0, len(tour))
	next = append(next, tour[:m.P1+1]...)
	next = append(next, tour[m.P2+1:m.P3+1]...)
	next = append(next, tour[m.P1+1:m.P2+1]...)
	next = append(next, tour[m.P3+1:]...)
	s.Tour = next
	s.Length += delta
}

// Equal reports whether a and b are the same cycle in either direction.
func (t *Scheme) Equal(a, b *Solution) bool { return sameCycle(a.Tour, b.Tour) }

// Clone returns an independent copy of s.
func (t *Scheme) Clone(s *Solution) *Solution {
	return &Solution{Tour: slices.Clone(s.Tour), Length: s.Length}
}
