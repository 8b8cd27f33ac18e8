// Package ils implements Iterated Local Search: descent to a local optimum
// followed by perturbation-guided escapes, deepening whenever an escape
// improves on the current solution.
//
// Per restart:
//
//  1. If the worklist is empty, build one locally optimal solution per
//     initial-solution source (offering each to the pool) and order the
//     worklist from worst to best.
//  2. Pop the best remaining solution.
//  3. Escape loop. Rank the perturbations of the current solution by their
//     speculative cost merged with the current cost (cost.MergeSpeculative),
//     best first. Then repeatedly:
//     a. at least MinimumNumberOfPerturbations tried and an improvement
//     remembered ⇒ adopt it, depth++, re-rank for the new solution;
//     b. else no candidate left ⇒ leave the loop;
//     c. else clone, apply the next move, descend with the move as origin,
//     offer the result, remember it if it beats the best escape so far.
//  4. Next restart.
//
// Termination: the wall-clock budget and the restart cap are checked once
// per restart; the iteration cap (MaximumNumberOfIterations) is checked
// before every perturbation and ends the run when reached.
//
// The current solution is never mutated while it is being explored: every
// perturbation is applied to a clone.
package ils
