// Package cost defines the Global Cost used to rank solutions and moves.
//
// A Cost is a short vector of int64 components compared lexicographically:
// component 0 first, then component 1, and so on. Lower is better on every
// tier. A Cost of arity 1 behaves like a plain scalar.
//
// Representation:
//
//	Cost{v: [MaxArity]int64, n: arity}
//
// The fixed-size array keeps Cost a comparable value type: two costs are
// equal under == exactly when they have the same arity and components.
// Unused tail slots are always zero.
//
// Utilities:
//   - Compare / Less — lexicographic ordering.
//   - MergeSpeculative — fold the current solution's early tiers into a
//     move's speculative cost before ranking perturbations.
//   - SortStable / SortStableDesc — order arbitrary items by a cost key.
//
// Costs compared within one search run must share the same arity; the
// drivers in package search enforce that and report ErrArityMismatch.
package cost
