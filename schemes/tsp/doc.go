// Package tsp is a local scheme for the symmetric Euclidean Travelling
// Salesman Problem.
//
// Distances are Euclidean, rounded to the nearest integer. A solution is a
// closed tour stored as n+1 location ids with Tour[0] == Tour[n] == 0; the
// Global Cost is the tour length (arity 1).
//
// Descent: best-improvement 2-opt. Removing edges (t[i],t[i+1]) and
// (t[j],t[j+1]) and reconnecting as (t[i],t[j]), (t[i+1],t[j+1]) reverses
// the segment t[i+1..j].
//
// Perturbation: double bridge. Three cuts split the tour into A B C D and
// reconnect it as A C B D, a move 2-opt cannot undo in one step. After a
// kick, the descent is not allowed to remove any of the three edges the
// kick created. Instances with fewer than 8 locations offer no kicks.
//
// Files:
//   - instance JSON  {"xs": [...], "ys": [...]}
//   - certificate    {"locations": [0, ..., 0]}
//
// Concurrency: a Scheme owns the random stream it samples kicks from and
// must not be shared between goroutines.
package tsp
