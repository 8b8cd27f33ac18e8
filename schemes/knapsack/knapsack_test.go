package knapsack_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/ils"
	"github.com/katalvlaran/localsearch/internal/rng"
	"github.com/katalvlaran/localsearch/rls"
	"github.com/katalvlaran/localsearch/schemes/knapsack"
	"github.com/katalvlaran/localsearch/search"
)

// threeItems: capacity 10, items (5,10) (5,9) (6,20).
func threeItems() *knapsack.Instance {
	in := &knapsack.Instance{Capacity: 10}
	in.AddItem(5, 10)
	in.AddItem(5, 9)
	in.AddItem(6, 20)
	return in
}

func mustScheme(t testing.TB, in *knapsack.Instance) *knapsack.Scheme {
	t.Helper()
	k, err := knapsack.New(in, 7)
	require.NoError(t, err)
	return k
}

func TestParseInstance(t *testing.T) {
	in, err := knapsack.ParseInstance([]byte(`{"capacity": 10, "weights": [5, 5, 6], "profits": [10, 9, 20]}`))
	require.NoError(t, err)
	if diff := cmp.Diff(threeItems(), in); diff != "" {
		t.Fatalf("instance mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInstance_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{"capacity": `, knapsack.ErrMalformedInstance},
		{"no capacity", `{"weights": [], "profits": []}`, knapsack.ErrMalformedInstance},
		{"weights not array", `{"capacity": 1, "weights": 3, "profits": []}`, knapsack.ErrMalformedInstance},
		{"string weight", `{"capacity": 1, "weights": ["a"], "profits": [1]}`, knapsack.ErrMalformedInstance},
		{"length mismatch", `{"capacity": 1, "weights": [1, 2], "profits": [1]}`, knapsack.ErrLengthMismatch},
		{"negative capacity", `{"capacity": -1, "weights": [], "profits": []}`, knapsack.ErrNegativeValue},
		{"negative weight", `{"capacity": 1, "weights": [-2], "profits": [1]}`, knapsack.ErrNegativeValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.ParseInstance([]byte(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInstance_WriteParse(t *testing.T) {
	want := knapsack.Generate(20, rng.New(11))
	var buf bytes.Buffer
	require.NoError(t, want.Write(&buf))

	got, err := knapsack.ParseInstance(buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate(t *testing.T) {
	in := knapsack.Generate(50, rng.New(3))
	require.Equal(t, 50, in.NumberOfItems())
	for j, it := range in.Items {
		assert.GreaterOrEqual(t, it.Weight, int64(0), "item %d", j)
		assert.LessOrEqual(t, it.Weight, int64(1_000_000), "item %d", j)
		assert.GreaterOrEqual(t, it.Profit, it.Weight, "item %d", j)
		assert.LessOrEqual(t, it.Profit, it.Weight+10_000, "item %d", j)
	}
	total := in.TotalWeight()
	assert.GreaterOrEqual(t, in.Capacity, total/4)
	assert.LessOrEqual(t, in.Capacity, total*3/4)

	assert.Empty(t, cmp.Diff(in, knapsack.Generate(50, rng.New(3))), "same seed, same instance")
}

func TestNew_NilInstance(t *testing.T) {
	_, err := knapsack.New(nil, 0)
	assert.ErrorIs(t, err, knapsack.ErrNilInstance)
}

func TestGlobalCost(t *testing.T) {
	k := mustScheme(t, threeItems())
	assert.Equal(t, cost.New(0, 0), k.GlobalCost(k.FromItems(nil)))
	assert.Equal(t, cost.New(0, -19), k.GlobalCost(k.FromItems([]int{0, 1})))
	assert.Equal(t, cost.New(6, -39), k.GlobalCost(k.FromItems([]int{0, 1, 2})))
}

func TestLocalSearch(t *testing.T) {
	k := mustScheme(t, threeItems())

	free := k.FromItems([]int{0, 1, 2})
	k.LocalSearch(free, nil)
	assert.Equal(t, []int{0, 1}, free.Selected(), "dropping item 2 repairs feasibility cheapest")

	forced := k.FromItems([]int{0, 1, 2})
	k.LocalSearch(forced, &knapsack.Move{Item: 2})
	assert.Equal(t, []int{2}, forced.Selected(), "item 2 is kept when it is the origin")
	assert.Equal(t, cost.New(0, -20), k.GlobalCost(forced))

	empty := k.FromItems(nil)
	k.LocalSearch(empty, nil)
	assert.Equal(t, []int{2}, empty.Selected())
}

func TestPerturbations_ExactCost(t *testing.T) {
	in := knapsack.Generate(25, rng.New(5))
	k := mustScheme(t, in)
	sol := k.InitialSolution(0)

	ps := k.Perturbations(sol)
	require.Len(t, ps, 25)
	for _, p := range ps {
		tmp := k.Clone(sol)
		k.ApplyMove(tmp, p.Move)
		assert.Equal(t, k.GlobalCost(tmp), p.Cost, "item %d", p.Move.Item)
	}
}

func TestCloneEqual(t *testing.T) {
	k := mustScheme(t, threeItems())
	a := k.FromItems([]int{1})
	b := k.Clone(a)
	require.True(t, k.Equal(a, b))

	k.ApplyMove(b, knapsack.Move{Item: 0})
	assert.False(t, k.Equal(a, b))
	assert.Equal(t, []int{1}, a.Selected())
	assert.Equal(t, int64(5), a.Weight)
}

func TestInitialSolution(t *testing.T) {
	in := knapsack.Generate(40, rng.New(9))
	k := mustScheme(t, in)

	a, b := k.InitialSolution(3), k.InitialSolution(3)
	assert.True(t, k.Equal(a, b), "same id, same start")
	assert.Empty(t, cmp.Diff(k.FromItems(a.Selected()), a), "cached totals match the selection")
	assert.False(t, k.Equal(a, k.InitialSolution(4)))
}

func TestCheck(t *testing.T) {
	in := threeItems()
	cases := []struct {
		name string
		data string
		want knapsack.Report
	}{
		{"feasible", `{"items": [0, 1]}`,
			knapsack.Report{NumberOfItems: 2, Weight: 10, Capacity: 10, Profit: 19, Feasible: true}},
		{"over capacity", `{"items": [0, 2]}`,
			knapsack.Report{NumberOfItems: 2, Weight: 11, Capacity: 10, Profit: 30}},
		{"duplicate", `{"items": [1, 1]}`,
			knapsack.Report{NumberOfItems: 1, NumberOfDuplicates: 1, Weight: 10, Capacity: 10, Profit: 18}},
		{"empty", `{"items": []}`,
			knapsack.Report{Capacity: 10, Feasible: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := knapsack.Check(in, []byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{`{"items": [3]}`, `{"items": [-1]}`, `{"items": 1}`, `{`} {
		_, err := knapsack.Check(in, []byte(bad))
		assert.ErrorIs(t, err, knapsack.ErrMalformedCertificate, bad)
	}
}

func TestWriteCertificate(t *testing.T) {
	k := mustScheme(t, threeItems())
	var buf bytes.Buffer
	require.NoError(t, knapsack.WriteCertificate(&buf, k.FromItems([]int{2, 0})))
	assert.JSONEq(t, `{"items": [0, 2]}`, buf.String())
}

// TestDrivers_Feasible runs both drivers end to end: every local optimum of
// the toggle neighbourhood is within capacity.
func TestDrivers_Feasible(t *testing.T) {
	in := knapsack.Generate(30, rng.New(21))
	k := mustScheme(t, in)

	opts := search.DefaultOptions[*knapsack.Solution]()
	opts.MaximumNumberOfRestarts = 10
	opts.InitialSolutionIDs = []int{0, 1, 2}
	rout, err := rls.Run(k, opts)
	require.NoError(t, err)

	opts.MaximumNumberOfRestarts = 3
	opts.MaximumNumberOfIterations = 300
	iout, err := ils.Run(k, opts)
	require.NoError(t, err)

	for _, out := range []search.Output[*knapsack.Solution]{rout, iout} {
		best, ok := out.Pool.Best()
		require.True(t, ok)

		var buf bytes.Buffer
		require.NoError(t, knapsack.WriteCertificate(&buf, best))
		rep, err := knapsack.Check(in, buf.Bytes())
		require.NoError(t, err)
		assert.True(t, rep.Feasible)
		assert.Equal(t, best.Profit, rep.Profit)
	}

	ibest, _ := iout.Pool.BestCost()
	rbest, _ := rout.Pool.BestCost()
	assert.False(t, rbest.Less(ibest), "ils starts from the same descents as its first rls restarts")
}
