package ils

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/scheme"
	"github.com/katalvlaran/localsearch/search"
)

// Algorithm is the name reported in the narration header.
const Algorithm = "Iterated Local Search"

// candidate is a worklist entry with its cached cost.
type candidate[S any] struct {
	sol  S
	cost cost.Cost
}

// searcher carries the state that outlives one escape loop.
type searcher[S any, M any] struct {
	ls  scheme.LocalScheme[S, M]
	run *search.Run[S, M]

	minPerturbations int
	maxIterations    int

	worklist   []candidate[S]
	restarts   int
	iterations int
	maxDepth   int
}

// Run executes Iterated Local Search with ls under opts.
//
// Errors: configuration sentinels from package search (returned before any
// capability call), or search.ErrArityMismatch if a solution or a
// perturbation carries a cost of a different arity.
func Run[S any, M any](ls scheme.LocalScheme[S, M], opts search.Options[S]) (search.Output[S], error) {
	r, err := search.Start(ls, opts, Algorithm,
		zap.Int("minimum_number_of_perturbations", opts.MinimumNumberOfPerturbations),
		zap.Int("maximum_number_of_iterations", opts.MaximumNumberOfIterations),
	)
	if err != nil {
		return search.Output[S]{}, err
	}

	s := &searcher[S, M]{
		ls:               ls,
		run:              r,
		minPerturbations: opts.MinimumNumberOfPerturbations,
		maxIterations:    opts.MaximumNumberOfIterations,
	}
	err = s.loop()

	return r.Finish(s.restarts, s.iterations, s.maxDepth), err
}

// iterationsExhausted reports whether the iteration cap is reached.
func (s *searcher[S, M]) iterationsExhausted() bool {
	return s.maxIterations > 0 && s.iterations >= s.maxIterations
}

// loop runs restarts until a limit is hit.
func (s *searcher[S, M]) loop() error {
	for !s.run.RestartsExhausted(s.restarts) && !s.run.Expired() && !s.iterationsExhausted() {
		s.restarts++

		if len(s.worklist) == 0 {
			if err := s.fillWorklist(); err != nil {
				return err
			}
		}

		last := len(s.worklist) - 1
		solution := s.worklist[last]
		s.worklist[last] = candidate[S]{}
		s.worklist = s.worklist[:last]

		depth, err := s.escape(solution)
		if err != nil {
			return err
		}
		s.maxDepth = max(s.maxDepth, depth)

		s.run.Logger().Debug("restart done",
			zap.Int("restart", s.restarts),
			zap.Int("depth", depth),
			zap.Int("number_of_iterations", s.iterations),
		)
	}
	return nil
}

// fillWorklist builds one locally optimal solution per source, offers each
// to the pool, and orders the worklist so that the best is popped first.
func (s *searcher[S, M]) fillWorklist() error {
	n := s.run.NumberOfSources()
	restart := s.restarts
	comment := func() string { return "start " + strconv.Itoa(restart) }

	for pos := 0; pos < n; pos++ {
		sol := s.run.InitialSolution(pos)
		s.ls.LocalSearch(sol, nil)

		c, err := s.run.Cost(sol)
		if err != nil {
			return err
		}
		if _, err = s.run.Offer(sol, comment); err != nil {
			return err
		}
		s.worklist = append(s.worklist, candidate[S]{sol: sol, cost: c})
	}

	cost.SortStableDesc(s.worklist, func(c candidate[S]) cost.Cost { return c.cost })
	return nil
}

// rank returns the perturbations of cur ordered best first by merged
// speculative cost.
func (s *searcher[S, M]) rank(cur candidate[S]) ([]scheme.Perturbation[M], error) {
	perturbations := s.ls.Perturbations(cur.sol)
	for i := range perturbations {
		if err := s.run.CheckArity(perturbations[i].Cost); err != nil {
			return nil, err
		}
		perturbations[i].Cost = cost.MergeSpeculative(perturbations[i].Cost, cur.cost)
	}
	cost.SortStable(perturbations, func(p scheme.Perturbation[M]) cost.Cost { return p.Cost })
	return perturbations, nil
}

// escape runs the escape loop from solution and returns the depth reached.
func (s *searcher[S, M]) escape(solution candidate[S]) (int, error) {
	perturbations, err := s.rank(solution)
	if err != nil {
		return 0, err
	}

	var (
		perturbationID = 0
		depth          = 1
		next           = solution
		betterFound    = false
	)
	for {
		if perturbationID >= s.minPerturbations && betterFound {
			solution = next
			betterFound = false
			perturbationID = 0
			depth++
			if perturbations, err = s.rank(solution); err != nil {
				return depth, err
			}
		}
		if perturbationID >= len(perturbations) || s.iterationsExhausted() {
			return depth, nil
		}

		move := perturbations[perturbationID].Move
		tmp := s.ls.Clone(solution.sol)
		s.ls.ApplyMove(tmp, move)
		s.ls.LocalSearch(tmp, &move)
		s.iterations++

		c, err := s.run.Cost(tmp)
		if err != nil {
			return depth, err
		}
		restart, iteration := s.restarts, s.iterations
		_, err = s.run.Offer(tmp, func() string {
			return "start " + strconv.Itoa(restart) + " iteration " + strconv.Itoa(iteration)
		})
		if err != nil {
			return depth, err
		}

		if c.Less(next.cost) {
			next = candidate[S]{sol: tmp, cost: c}
			betterFound = true
		}
		perturbationID++
	}
}
