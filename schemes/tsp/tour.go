package tsp

import (
	"errors"
	"fmt"
)

// ErrInvalidTour indicates a sequence that is not a closed tour through
// every location exactly once starting and ending at 0.
var ErrInvalidTour = errors.New("tsp: invalid tour")

// Solution is a closed tour with its cached length.
type Solution struct {
	// Tour has n+1 entries and Tour[0] == Tour[n] == 0.
	Tour   []int
	Length int64
}

// ValidateTour checks that tour is closed, starts at 0 and visits each of
// the n locations exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: length %d for %d locations", ErrInvalidTour, len(tour), n)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("%w: must start and end at 0", ErrInvalidTour)
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: location %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}
	return nil
}

// tourFromPermutation rotates perm so that location 0 comes first and
// closes it.
func tourFromPermutation(perm []int) []int {
	n := len(perm)
	start := 0
	for i, v := range perm {
		if v == 0 {
			start = i
			break
		}
	}
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = perm[(start+i)%n]
	}
	tour[n] = tour[0]
	return tour
}

// reverse reverses tour[i..k] in place.
func reverse(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// sameCycle reports whether two closed tours anchored at 0 describe the
// same cycle in either direction.
func sameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a) - 1
	forward, backward := true, true
	for i := 0; i <= n && (forward || backward); i++ {
		forward = forward && a[i] == b[i]
		backward = backward && a[i] == b[n-i]
	}
	return forward || backward
}

// edge is an undirected edge with u <= v.
type edge struct{ u, v int }

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}
