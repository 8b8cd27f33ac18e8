// Package localsearch is a generic local search engine for combinatorial
// optimization.
//
// You describe a problem once, as a scheme.LocalScheme[S, M]: how to build
// an initial solution, how to score it, how to descend to a local optimum,
// and which perturbations (moves with a speculative cost) lead away from it.
// The drivers do the rest: they restart, descend, perturb and keep the best
// solutions found in a bounded elite pool.
//
// Packages:
//
//	cost/             — lexicographic Global Cost, speculative-cost merge, stable sorts
//	scheme/           — the LocalScheme capability and the Perturbation carrier
//	pool/             — bounded, duplicate-free elite solution pool
//	search/           — shared driver Options, Output, narration (zap)
//	rls/              — Restarting Local Search
//	ils/              — Iterated Local Search
//	schemes/knapsack/ — example scheme: 0/1 knapsack, toggle neighbourhood
//	schemes/tsp/      — example scheme: Euclidean TSP, 2-opt + double bridge
//	cmd/localsearch/  — CLI: solve, generate, check, bench
//
// Quick start:
//
//	k, _ := knapsack.New(instance, 0)
//	opts := search.DefaultOptions[*knapsack.Solution]()
//	opts.TimeLimit = 5 * time.Second
//	out, err := ils.Run(k, opts)
//	best, _ := out.Pool.Best()
//
// The engine is single-threaded per driver call; run independent calls in
// parallel for more throughput (see `localsearch bench`).
package localsearch
