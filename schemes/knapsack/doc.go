// Package knapsack is a local scheme for the 0/1 knapsack problem.
//
// Solutions may violate the capacity. The Global Cost has two tiers:
//
//	(over-capacity, −profit)
//
// so a descent first repairs feasibility and then maximizes profit.
//
// Neighbourhood: toggle one item (add it if absent, remove it if present).
// LocalSearch is best-improvement over all toggles and stops at a local
// optimum. A perturbation forces one item's status; the descent that
// follows it leaves that item alone.
//
// Files:
//   - instance JSON  {"capacity": c, "weights": [...], "profits": [...]}
//   - certificate    {"items": [j0, j1, ...]}
//
// Randomness: InitialSolution(id) draws from a stream derived from the
// scheme seed and id, so a given (seed, id) always yields the same start.
package knapsack
