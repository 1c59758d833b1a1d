package spp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewspp/spp"
)

// stubSolver returns a canned result and records the model it saw.
type stubSolver struct {
	result spp.Result
	seen   *spp.Model
}

func (s *stubSolver) Solve(m *spp.Model) (spp.Result, error) {
	s.seen = m

	return s.result, nil
}

// partitionableInstance writes a small instance where {P1, P2} is an
// exact cover of {L1, L2, L3}.
func partitionableInstance(t *testing.T) *spp.Instance {
	t.Helper()
	dir := writeInstance(t, map[string]string{
		"legs.csv":     "leg_id\nL1\nL2\nL3\n",
		"pairings.csv": "pairing_id,legs\nP1,\"L1,L2\"\nP2,L3\nP3,\"L2,L3\"\n",
	})

	in := spp.NewInstance(dir)
	require.NoError(t, in.Load())

	return in
}

// TestBuildModel_LazyFallbacks: building straight after legs+pairings
// infers incidence and applies leg-count costs, with the partitioning
// sense recorded explicitly.
func TestBuildModel_LazyFallbacks(t *testing.T) {
	dir := writeInstance(t, map[string]string{
		"legs.csv":     "leg_id\nL1\nL2\n",
		"pairings.csv": "pairing_id,legs\nP1,L1\nP2,\"L1,L2\"\n",
	})

	in := spp.NewInstance(dir)
	require.NoError(t, in.LoadLegs())
	require.NoError(t, in.LoadPairings())

	m, err := in.BuildModel()
	require.NoError(t, err, "fallbacks complete the model")

	assert.Equal(t, spp.SenseExactlyOne, m.Sense, "exactly-one partitioning sense")
	assert.Equal(t, []float64{1, 2}, m.Costs, "leg-count cost fallback")
	assert.Equal(t, 2, m.Inc.Rows(), "inferred matrix shape")
	assert.True(t, m.Inc.At(1, 1), "P2 covers L2")
}

// TestBuildModel_RequiresLoadedStages: legs and pairings have no
// fallback.
func TestBuildModel_RequiresLoadedStages(t *testing.T) {
	in := spp.NewInstance(t.TempDir())

	_, err := in.BuildModel()
	assert.ErrorIs(t, err, spp.ErrLegsNotLoaded, "legs must be loaded first")
}

// TestSolve_OptimalPassesSelection: an optimal result surfaces the
// selected indices with a nil diagnosis.
func TestSolve_OptimalPassesSelection(t *testing.T) {
	in := partitionableInstance(t)
	stub := &stubSolver{result: spp.Result{Status: spp.StatusOptimal, Selected: []int{0, 1}}}

	selected, diagnosis, err := in.Solve(stub)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, selected, "selection passed through")
	assert.Nil(t, diagnosis, "no diagnosis on an optimal outcome")
	require.NotNil(t, stub.seen, "solver received the model")
	assert.Equal(t, 3, stub.seen.Inc.Cols(), "model carries all pairings")
}

// TestSolve_UncoverableInstance: when no pairing covers any leg the
// full pipeline must report an empty selection and list every
// uncoverable leg in the diagnosis.
func TestSolve_UncoverableInstance(t *testing.T) {
	dir := writeInstance(t, map[string]string{
		"legs.csv":     "leg_id\nL1\nL2\nL3\n",
		"pairings.csv": "pairing_id,legs\nP1,\nP2,\n",
	})

	in := spp.NewInstance(dir)
	require.NoError(t, in.Load())

	selected, diagnosis, err := in.Solve(spp.NewPBSolver())
	require.NoError(t, err, "infeasibility is a business outcome")

	assert.Empty(t, selected, "no usable solution exists")
	require.NotNil(t, diagnosis, "diagnostics must run")
	require.Len(t, diagnosis.Uncovered, 3, "all uncoverable legs are reported")
	assert.Equal(t, "L1", diagnosis.Uncovered[0].ID, "legs identified by id")
}

// TestSolve_NonOptimalYieldsDiagnosis: every non-optimal status is
// handled uniformly — empty selection plus a structural diagnosis,
// never an error.
func TestSolve_NonOptimalYieldsDiagnosis(t *testing.T) {
	for _, status := range []spp.Status{spp.StatusInfeasible, spp.StatusUnknown} {
		in := partitionableInstance(t)
		stub := &stubSolver{result: spp.Result{Status: status}}

		selected, diagnosis, err := in.Solve(stub)
		require.NoError(t, err, "status %v is a business outcome, not an error", status)

		assert.Empty(t, selected, "status %v yields an empty selection", status)
		require.NotNil(t, diagnosis, "status %v triggers diagnostics", status)
		assert.Empty(t, diagnosis.Uncovered, "this instance has no structural defect")
	}
}
