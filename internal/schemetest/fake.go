// Package schemetest provides a scriptable LocalScheme for driver tests.
//
// A Fake solution is a single integer V with cost Scalar(V). Its behavior is
// injected through small functions, and every capability call is appended
// to Events so tests can assert call order:
//
//	init:<id>  ls  ls:<delta>  perturb:<v>  apply:<delta>  clone
package schemetest

import (
	"fmt"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/scheme"
)

// Sol is the Fake solution.
type Sol struct {
	V int64
}

// Move shifts V by Delta.
type Move struct {
	Delta int64
}

// Fake implements scheme.LocalScheme[*Sol, Move].
type Fake struct {
	// Initial maps a seed id to a starting value. nil ⇒ V = id.
	Initial func(id int) int64

	// Descend maps V to its local optimum. nil ⇒ identity.
	Descend func(v int64) int64

	// Deltas lists the perturbation deltas available at V. nil ⇒ none.
	Deltas func(v int64) []int64

	// MoveCost overrides the speculative cost of a move. nil ⇒ Scalar(V+Delta).
	MoveCost func(v, delta int64) cost.Cost

	Events []string
}

var _ scheme.LocalScheme[*Sol, Move] = (*Fake)(nil)

func (f *Fake) InitialSolution(id int) *Sol {
	f.Events = append(f.Events, fmt.Sprintf("init:%d", id))
	if f.Initial == nil {
		return &Sol{V: int64(id)}
	}
	return &Sol{V: f.Initial(id)}
}

func (f *Fake) GlobalCost(s *Sol) cost.Cost { return cost.Scalar(s.V) }

func (f *Fake) LocalSearch(s *Sol, origin *Move) {
	if origin == nil {
		f.Events = append(f.Events, "ls")
	} else {
		f.Events = append(f.Events, fmt.Sprintf("ls:%d", origin.Delta))
	}
	if f.Descend != nil {
		s.V = f.Descend(s.V)
	}
}

func (f *Fake) Perturbations(s *Sol) []scheme.Perturbation[Move] {
	f.Events = append(f.Events, fmt.Sprintf("perturb:%d", s.V))
	if f.Deltas == nil {
		return nil
	}
	var out []scheme.Perturbation[Move]
	for _, d := range f.Deltas(s.V) {
		c := cost.Scalar(s.V + d)
		if f.MoveCost != nil {
			c = f.MoveCost(s.V, d)
		}
		out = append(out, scheme.Perturbation[Move]{Move: Move{Delta: d}, Cost: c})
	}
	return out
}

func (f *Fake) ApplyMove(s *Sol, m Move) {
	f.Events = append(f.Events, fmt.Sprintf("apply:%d", m.Delta))
	s.V += m.Delta
}

func (f *Fake) Equal(a, b *Sol) bool { return a.V == b.V }

func (f *Fake) Clone(s *Sol) *Sol {
	f.Events = append(f.Events, "clone")
	cp := *s
	return &cp
}

// Count returns how many recorded events equal e.
func (f *Fake) Count(e string) int {
	n := 0
	for _, x := range f.Events {
		if x == e {
			n++
		}
	}
	return n
}

// Filter returns the recorded events accepted by keep, in order.
func (f *Fake) Filter(keep func(string) bool) []string {
	var out []string
	for _, x := range f.Events {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}
