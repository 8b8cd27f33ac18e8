// Package rls implements Restarting Local Search: repeated independent
// descents from fresh initial solutions, keeping the best in a solution pool.
//
// State machine:
//
//	restart → initial solution → descend → offer to pool → check → restart | stop
//
// Initial solutions come from the configured sources round-robin: restart r
// (1-based) uses source (r-1) mod number_of_sources, where seed ids precede
// supplied solutions.
//
// Termination is checked once per restart, before it begins: the wall-clock
// budget (Options.TimeLimit) and the restart cap
// (Options.MaximumNumberOfRestarts). A descent in progress is never
// interrupted, so the run may overrun its budget by one restart.
//
// Complexity: O(R · (initial + descent + pool)) where R is the number of
// restarts and pool is O(MaximumPoolSize).
package rls

import (
	"strconv"

	"github.com/katalvlaran/localsearch/scheme"
	"github.com/katalvlaran/localsearch/search"
)

// Algorithm is the name reported in the narration header.
const Algorithm = "Restarting Local Search"

// Run executes Restarting Local Search with ls under opts.
//
// Errors: configuration sentinels from package search (returned before any
// capability call), or search.ErrArityMismatch if ls returns costs of
// varying arity.
func Run[S any, M any](ls scheme.LocalScheme[S, M], opts search.Options[S]) (search.Output[S], error) {
	r, err := search.Start(ls, opts, Algorithm)
	if err != nil {
		return search.Output[S]{}, err
	}

	sources := r.NumberOfSources()
	restarts := 0
	for !r.RestartsExhausted(restarts) && !r.Expired() {
		restarts++

		solution := r.InitialSolution((restarts - 1) % sources)
		ls.LocalSearch(solution, nil)

		n := restarts
		if _, err = r.Offer(solution, func() string { return "start " + strconv.Itoa(n) }); err != nil {
			return r.Finish(restarts, 0, 0), err
		}
	}

	return r.Finish(restarts, 0, 0), nil
}
