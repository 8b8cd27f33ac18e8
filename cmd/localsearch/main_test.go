package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the CLI with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// generate writes <dir>/<problem>_<n>.json for n in [lo, hi].
func generate(t *testing.T, dir, problem string, lo, hi int) string {
	t.Helper()
	prefix := filepath.Join(dir, problem)
	_, err := execute(t, "generate", problem, "-o", prefix,
		"--min-size", strconv.Itoa(lo), "--max-size", strconv.Itoa(hi), "--seed", "3")
	require.NoError(t, err)
	return prefix
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "knapsack", "-o", filepath.Join(dir, "ks"), "--min-size", "3", "--max-size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "3 instances written")

	for _, n := range []string{"3", "4", "5"} {
		assert.FileExists(t, filepath.Join(dir, "ks_"+n+".json"))
	}
	assert.NoFileExists(t, filepath.Join(dir, "ks_6.json"))

	_, err = execute(t, "generate", "tsp", "-o", filepath.Join(dir, "x"), "--min-size", "4", "--max-size", "2")
	assert.Error(t, err)
}

func TestSolveKnapsack_Certificate(t *testing.T) {
	dir := t.TempDir()
	prefix := generate(t, dir, "knapsack", 20, 20)
	cert := filepath.Join(dir, "out", "sol.json")

	out, err := execute(t, "solve", "knapsack", "-i", prefix+"_20.json",
		"--restarts", "3", "--time-limit", "0", "-c", cert)
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm:            restarting_local_search")
	assert.Contains(t, out, "Number of restarts:   3")
	assert.Contains(t, out, "Feasible:             true")
	assert.FileExists(t, cert)

	checked, err := execute(t, "check", "knapsack", "-i", prefix+"_20.json", "-c", cert)
	require.NoError(t, err)
	assert.Contains(t, checked, "Feasible:             true")
}

func TestSolveTSP_Iterated(t *testing.T) {
	prefix := generate(t, t.TempDir(), "tsp", 12, 12)

	out, err := execute(t, "solve", "tsp", "-i", prefix+"_12.json",
		"-a", "iterated_local_search", "--iterations", "50", "--time-limit", "0", "--kicks", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of iterations: 50")
	assert.Contains(t, out, "Maximum depth:")
}

func TestSolve_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	prefix := generate(t, dir, "knapsack", 10, 10)
	cfg := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
algorithm: iterated_local_search
time_limit: "0"
maximum_number_of_iterations: 30
`), 0o644))

	out, err := execute(t, "--config", cfg, "solve", "knapsack", "-i", prefix+"_10.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm:            iterated_local_search")
	assert.Contains(t, out, "Number of iterations: 30")

	_, err = execute(t, "--config", cfg, "solve", "knapsack", "-i", prefix+"_10.json", "-a", "tabu_search")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	prefix := generate(t, dir, "tsp", 9, 10)

	out, err := execute(t, "bench", "tsp",
		"-i", prefix+"_9.json", "-i", prefix+"_10.json",
		"--seeds", "2", "-j", "2", "--restarts", "2", "--time-limit", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "INSTANCE"))
	assert.Contains(t, lines[1], "tsp_9.json")
	assert.Contains(t, lines[4], "tsp_10.json")
}

func TestBench_MissingInstance(t *testing.T) {
	_, err := execute(t, "bench", "knapsack", "-i", filepath.Join(t.TempDir(), "absent.json"),
		"--restarts", "1", "--time-limit", "0")
	assert.Error(t, err)
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	prefix := generate(t, dir, "tsp", 5, 5)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"locations": [0, 9, 0]}`), 0o644))

	_, err := execute(t, "check", "tsp", "-i", prefix+"_5.json", "-c", bad)
	assert.Error(t, err)

	_, err = execute(t, "check", "sudoku", "-i", prefix+"_5.json", "-c", bad)
	assert.Error(t, err)
}
