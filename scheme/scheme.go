// Package scheme declares the Local Scheme capability: the problem-specific
// operations the search drivers call but never implement.
//
// A concrete problem (item selection, tour construction, ...) provides one
// implementation of LocalScheme for its own Solution type S and Move type M.
// Problems are independent implementations, not variations of a base type.
//
// Ownership rules the drivers rely on:
//   - InitialSolution returns a fresh value owned by the caller.
//   - LocalSearch and ApplyMove mutate their argument in place, so S is
//     normally a pointer type.
//   - Clone returns a deep copy; mutating the copy never affects the source.
//   - Randomness, if any, lives inside the implementation (seeded explicitly),
//     never in a process-wide source.
package scheme

import "github.com/katalvlaran/localsearch/cost"

// Perturbation is a candidate move together with the speculative Global Cost
// the capability estimated for it at generation time. The estimate need not
// be exact: local search after the move may change the cost further.
type Perturbation[M any] struct {
	Move M
	Cost cost.Cost
}

// LocalScheme is the capability contract consumed by the search drivers.
type LocalScheme[S any, M any] interface {
	// InitialSolution builds one starting solution deterministically from
	// a seed identifier.
	InitialSolution(seedID int) S

	// GlobalCost returns the lexicographic cost of s. Arity is fixed per
	// problem.
	GlobalCost(s S) cost.Cost

	// LocalSearch drives s to a local optimum in place. When origin is
	// non-nil it is the perturbation just applied to s, and the descent
	// must not reverse the change that move introduced.
	LocalSearch(s S, origin *M)

	// Perturbations lists candidate escape moves for s, each with its
	// speculative cost. The list is finite and may be empty.
	Perturbations(s S) []Perturbation[M]

	// ApplyMove mutates s in place to reflect m.
	ApplyMove(s S, m M)

	// Equal reports structural equality; the solution pool uses it to keep
	// its archive duplicate-free.
	Equal(a, b S) bool

	// Clone returns a deep copy of s.
	Clone(s S) S
}
