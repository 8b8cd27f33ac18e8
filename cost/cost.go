package cost

import (
	"slices"
	"strconv"
	"strings"
)

// MaxArity is the largest number of components a Cost can hold.
const MaxArity = 4

// Cost is a lexicographically ordered objective value; lower is better.
// The zero value has arity 0 and is only meaningful as "unset".
type Cost struct {
	v [MaxArity]int64
	n int
}

// New builds a Cost from its components, most significant first.
// Panics if no component is given or more than MaxArity are given.
//
// Complexity: O(k) for k components.
func New(components ...int64) Cost {
	if len(components) == 0 {
		panic("cost: New() needs at least one component")
	}
	if len(components) > MaxArity {
		panic("cost: New() arity exceeds MaxArity")
	}
	var c Cost
	c.n = copy(c.v[:], components)

	return c
}

// Scalar returns a Cost of arity 1.
func Scalar(x int64) Cost {
	return Cost{v: [MaxArity]int64{x}, n: 1}
}

// Len returns the arity of c.
func (c Cost) Len() int { return c.n }

// IsZero reports whether c is the unset zero value.
func (c Cost) IsZero() bool { return c.n == 0 }

// At returns component i. Panics when i is outside [0, Len()).
func (c Cost) At(i int) int64 {
	if i < 0 || i >= c.n {
		panic("cost: component index out of range")
	}
	return c.v[i]
}

// Components returns a fresh slice holding the components of c.
func (c Cost) Components() []int64 {
	out := make([]int64, c.n)
	copy(out, c.v[:c.n])
	return out
}

// Compare returns -1, 0 or +1 as c is better than, equal to, or worse than o.
// Components are compared in order over the common prefix; when the prefix
// ties, the shorter cost orders first.
//
// Complexity: O(MaxArity).
func Compare(c, o Cost) int {
	m := min(c.n, o.n)
	for i := 0; i < m; i++ {
		switch {
		case c.v[i] < o.v[i]:
			return -1
		case c.v[i] > o.v[i]:
			return 1
		}
	}
	switch {
	case c.n < o.n:
		return -1
	case c.n > o.n:
		return 1
	}
	return 0
}

// Less reports whether c is strictly better than o.
func (c Cost) Less(o Cost) bool { return Compare(c, o) < 0 }

// String renders a scalar as "42" and a composite cost as "(0, -1200)".
func (c Cost) String() string {
	if c.n == 1 {
		return strconv.FormatInt(c.v[0], 10)
	}
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(c.v[i], 10))
	}
	b.WriteByte(')')
	return b.String()
}

// MergeSpeculative returns move with every component except the last
// replaced by min(move[i], current[i]). Arity-1 costs come back unchanged.
//
// A perturbation may already lock in gains on the high-priority tiers before
// local search runs; the merge lets the ranking of perturbations see them.
//
// Complexity: O(MaxArity).
func MergeSpeculative(move, current Cost) Cost {
	if move.n < 2 {
		return move
	}
	out := move
	last := min(move.n-1, current.n)
	for i := 0; i < last; i++ {
		out.v[i] = min(move.v[i], current.v[i])
	}
	return out
}

// SortStable orders items ascending by key, keeping the relative order of
// items with equal costs.
//
// Complexity: O(n log n) comparisons, each O(MaxArity).
func SortStable[T any](items []T, key func(T) Cost) {
	slices.SortStableFunc(items, func(a, b T) int {
		return Compare(key(a), key(b))
	})
}

// SortStableDesc orders items from worst to best, keeping the relative order
// of items with equal costs.
func SortStableDesc[T any](items []T, key func(T) Cost) {
	slices.SortStableFunc(items, func(a, b T) int {
		return Compare(key(b), key(a))
	})
}
