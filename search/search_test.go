package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/internal/schemetest"
	"github.com/katalvlaran/localsearch/pool"
	"github.com/katalvlaran/localsearch/search"
)

type sol = *schemetest.Sol

func TestDefaultOptions(t *testing.T) {
	o := search.DefaultOptions[sol]()
	assert.Equal(t, 1, o.MaximumPoolSize)
	assert.Equal(t, 1, o.MinimumNumberOfPerturbations)
	assert.Zero(t, o.MaximumNumberOfRestarts)
	assert.Zero(t, o.TimeLimit)
	assert.NoError(t, o.Validate())
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		opts search.Options[sol]
		want error
	}{
		{"zero value", search.Options[sol]{}, nil},
		{"pool", search.Options[sol]{MaximumPoolSize: -1}, search.ErrInvalidPoolSize},
		{"restarts", search.Options[sol]{MaximumNumberOfRestarts: -1}, search.ErrNegativeLimit},
		{"iterations", search.Options[sol]{MaximumNumberOfIterations: -1}, search.ErrNegativeLimit},
		{"perturbations", search.Options[sol]{MinimumNumberOfPerturbations: -1}, search.ErrNegativeLimit},
		{"time", search.Options[sol]{TimeLimit: -time.Nanosecond}, search.ErrNegativeTimeLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	quiet, err := search.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.ErrorLevel))

	loud, err := search.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, loud.Core().Enabled(zap.DebugLevel))
}

func TestStart_Defaults(t *testing.T) {
	f := &schemetest.Fake{}
	opts := search.Options[sol]{}

	r, err := search.Start(f, opts, "test")
	require.NoError(t, err)

	assert.Equal(t, 1, r.Options().MaximumPoolSize)
	assert.Equal(t, []int{0}, r.Options().InitialSolutionIDs)
	assert.Nil(t, opts.InitialSolutionIDs, "caller options untouched")
	assert.Equal(t, 1, r.NumberOfSources())
	assert.Equal(t, 1, r.Pool().MaximumSize())
	assert.False(t, r.Expired())
	assert.False(t, r.RestartsExhausted(1_000_000))
	assert.Empty(t, f.Events, "start makes no capability call")
}

func TestStart_IDsAreCopied(t *testing.T) {
	ids := []int{4, 5}
	opts := search.DefaultOptions[sol]()
	opts.InitialSolutionIDs = ids

	r, err := search.Start(&schemetest.Fake{}, opts, "test")
	require.NoError(t, err)

	ids[0] = 99
	assert.Equal(t, []int{4, 5}, r.Options().InitialSolutionIDs)
}

func TestRun_InitialSolution(t *testing.T) {
	f := &schemetest.Fake{}
	supplied := &schemetest.Sol{V: 40}
	opts := search.DefaultOptions[sol]()
	opts.InitialSolutionIDs = []int{7}
	opts.InitialSolutions = []sol{supplied}

	r, err := search.Start(f, opts, "test")
	require.NoError(t, err)
	require.Equal(t, 2, r.NumberOfSources())

	assert.Equal(t, int64(7), r.InitialSolution(0).V)

	got := r.InitialSolution(1)
	assert.Equal(t, int64(40), got.V)
	assert.NotSame(t, supplied, got)
	assert.Equal(t, []string{"init:7", "clone"}, f.Events)
}

func TestRun_CheckArity(t *testing.T) {
	r, err := search.Start(&schemetest.Fake{}, search.DefaultOptions[sol](), "test")
	require.NoError(t, err)

	assert.ErrorIs(t, r.CheckArity(cost.Cost{}), search.ErrArityMismatch)
	require.NoError(t, r.CheckArity(cost.New(1, 2)))
	assert.NoError(t, r.CheckArity(cost.New(-5, 0)))
	assert.ErrorIs(t, r.CheckArity(cost.Scalar(1)), search.ErrArityMismatch)

	_, err = r.Cost(&schemetest.Sol{V: 3})
	assert.ErrorIs(t, err, search.ErrArityMismatch)
}

func TestRun_Offer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var seen []int64
	opts := search.DefaultOptions[sol]()
	opts.Logger = zap.New(core)
	opts.NewSolutionCallback = func(s sol) { seen = append(seen, s.V) }

	r, err := search.Start(&schemetest.Fake{}, opts, "test", zap.Int("extra", 3))
	require.NoError(t, err)

	rendered := 0
	comment := func() string { rendered++; return "note" }

	st, err := r.Offer(&schemetest.Sol{V: 5}, comment)
	require.NoError(t, err)
	assert.Equal(t, pool.AddedNewBest, st)

	st, err = r.Offer(&schemetest.Sol{V: 9}, comment)
	require.NoError(t, err)
	assert.Equal(t, pool.Rejected, st)

	assert.Equal(t, 1, rendered, "comment rendered only for a new best")
	assert.Equal(t, []int64{5}, seen)

	header := logs.FilterMessage("local search solver").All()
	require.Len(t, header, 1)
	assert.EqualValues(t, 3, header[0].ContextMap()["extra"])
	assert.Equal(t, "inf", header[0].ContextMap()["time_limit"])

	out := r.Finish(2, 0, 0)
	assert.Equal(t, 2, out.NumberOfRestarts)
	assert.Same(t, r.Pool(), out.Pool)
	final := logs.FilterMessage("final statistics").All()
	require.Len(t, final, 1)
	assert.Equal(t, "5", final[0].ContextMap()["value"])
}

func TestStart_Errors(t *testing.T) {
	_, err := search.Start[sol, schemetest.Move](nil, search.DefaultOptions[sol](), "test")
	assert.ErrorIs(t, err, search.ErrNilScheme)

	opts := search.DefaultOptions[sol]()
	opts.MaximumPoolSize = -3
	_, err = search.Start(&schemetest.Fake{}, opts, "test")
	assert.ErrorIs(t, err, search.ErrInvalidPoolSize)
}
