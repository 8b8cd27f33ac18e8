package knapsack

import (
	"slices"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/internal/rng"
	"github.com/katalvlaran/localsearch/scheme"
)

// Solution is a (possibly over-capacity) item selection with cached totals.
type Solution struct {
	Items  []bool
	Weight int64
	Profit int64
}

// Selected returns the indices of the selected items in increasing order.
func (s *Solution) Selected() []int {
	out := make([]int, 0, len(s.Items))
	for j, in := range s.Items {
		if in {
			out = append(out, j)
		}
	}
	return out
}

// Move toggles item Item.
type Move struct {
	Item int
}

// Scheme implements scheme.LocalScheme[*Solution, Move].
type Scheme struct {
	inst *Instance
	seed int64
}

var _ scheme.LocalScheme[*Solution, Move] = (*Scheme)(nil)

// New returns a scheme for inst. seed drives InitialSolution.
func New(inst *Instance, seed int64) (*Scheme, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	return &Scheme{inst: inst, seed: seed}, nil
}

// Instance returns the instance the scheme works on.
func (k *Scheme) Instance() *Instance { return k.inst }

// InitialSolution selects each item independently with probability 1/2.
//
// Complexity: O(n).
func (k *Scheme) InitialSolution(id int) *Solution {
	r := rng.Derive(k.seed, uint64(id))
	sol := &Solution{Items: make([]bool, len(k.inst.Items))}
	for j := range sol.Items {
		if r.Intn(2) == 0 {
			k.toggle(sol, j)
		}
	}
	return sol
}

// FromItems builds a solution selecting exactly the given item indices.
// Out-of-range and repeated indices are ignored.
func (k *Scheme) FromItems(items []int) *Solution {
	sol := &Solution{Items: make([]bool, len(k.inst.Items))}
	for _, j := range items {
		if j >= 0 && j < len(sol.Items) && !sol.Items[j] {
			k.toggle(sol, j)
		}
	}
	return sol
}

func (k *Scheme) costOf(weight, profit int64) cost.Cost {
	return cost.New(max(0, weight-k.inst.Capacity), -profit)
}

// GlobalCost is (over-capacity, −profit).
func (k *Scheme) GlobalCost(s *Solution) cost.Cost {
	return k.costOf(s.Weight, s.Profit)
}

// toggleCost is the exact cost of s after toggling item j.
func (k *Scheme) toggleCost(s *Solution, j int) cost.Cost {
	it := k.inst.Items[j]
	if s.Items[j] {
		return k.costOf(s.Weight-it.Weight, s.Profit-it.Profit)
	}
	return k.costOf(s.Weight+it.Weight, s.Profit+it.Profit)
}

func (k *Scheme) toggle(s *Solution, j int) {
	it := k.inst.Items[j]
	if s.Items[j] {
		s.Items[j] = false
		s.Weight -= it.Weight
		s.Profit -= it.Profit
		return
	}
	s.Items[j] = true
	s.Weight += it.Weight
	s.Profit += it.Profit
}

// LocalSearch applies the best improving toggle until none exists. When
// origin is set, its item is never toggled.
//
// Complexity: O(n) per improving step.
func (k *Scheme) LocalSearch(s *Solution, origin *Move) {
	forbidden := -1
	if origin != nil {
		forbidden = origin.Item
	}
	for {
		best := -1
		bestCost := k.GlobalCost(s)
		for j := range k.inst.Items {
			if j == forbidden {
				continue
			}
			if c := k.toggleCost(s, j); c.Less(bestCost) {
				best, bestCost = j, c
			}
		}
		if best < 0 {
			return
		}
		k.toggle(s, best)
	}
}

// Perturbations offers one toggle per item, each with its exact cost.
func (k *Scheme) Perturbations(s *Solution) []scheme.Perturbation[Move] {
	out := make([]scheme.Perturbation[Move], len(k.inst.Items))
	for j := range k.inst.Items {
		out[j] = scheme.Perturbation[Move]{Move: Move{Item: j}, Cost: k.toggleCost(s, j)}
	}
	return out
}

// ApplyMove toggles m.Item.
func (k *Scheme) ApplyMove(s *Solution, m Move) { k.toggle(s, m.Item) }

// Equal reports whether a and b select the same items.
func (k *Scheme) Equal(a, b *Solution) bool { return slices.Equal(a.Items, b.Items) }

// Clone returns an independent copy of s.
func (k *Scheme) Clone(s *Solution) *Solution {
	return &Solution{Items: slices.Clone(s.Items), Weight: s.Weight, Profit: s.Profit}
}
