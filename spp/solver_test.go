package spp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewspp/spp"
)

// buildModel assembles a model directly from leg lists per pairing.
func buildModel(t *testing.T, legs []string, pairingLegs [][]string, costs []float64) *spp.Model {
	t.Helper()

	reg := spp.NewLegRegistry()
	for _, l := range legs {
		reg.Add(l)
	}

	a := spp.NewIncidence(len(legs), len(pairingLegs))
	for j, pl := range pairingLegs {
		for _, l := range pl {
			i, ok := reg.Index(l)
			require.True(t, ok, "test legs must be registered")
			a.Set(i, j)
		}
	}

	return &spp.Model{Costs: costs, Inc: a, Sense: spp.SenseExactlyOne}
}

// TestPBSolver_TinyPartition: selecting the two singletons (cost 2)
// beats the all-in-one pairing (cost 3); the backend must find the
// optimum and report the dense selected indices.
func TestPBSolver_TinyPartition(t *testing.T) {
	m := buildModel(t,
		[]string{"A", "B"},
		[][]string{{"A"}, {"B"}, {"A", "B"}},
		[]float64{1, 1, 3},
	)

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusOptimal, res.Status, "instance is solvable")
	assert.Equal(t, []int{0, 1}, res.Selected, "cheapest exact cover")
	assert.InDelta(t, 2.0, res.Objective, 1e-9, "objective under the float costs")
}

// TestPBSolver_UnselectedTrailingColumn: the optimum leaves the
// highest-index pairing out; extracting the selection must still read
// the assignment of every column, last one included, without shifting.
func TestPBSolver_UnselectedTrailingColumn(t *testing.T) {
	m := buildModel(t,
		[]string{"A", "B", "C"},
		[][]string{{"A", "B"}, {"C"}, {"A", "B", "C"}},
		[]float64{1, 1, 5},
	)

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusOptimal, res.Status)
	assert.Equal(t, []int{0, 1}, res.Selected, "the two-piece cover beats the all-in-one pairing")
	assert.InDelta(t, 2.0, res.Objective, 1e-9)
}

// TestPBSolver_SingleColumnCover: when only the combined pairing can
// partition, it must be selected despite its higher cost.
func TestPBSolver_SingleColumnCover(t *testing.T) {
	m := buildModel(t,
		[]string{"A", "B"},
		[][]string{{"A"}, {"A", "B"}},
		[]float64{1, 5},
	)

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusOptimal, res.Status)
	assert.Equal(t, []int{1}, res.Selected, "only the combined pairing covers B, and picking the singleton too would double-cover A")
}

// TestPBSolver_Infeasible: overlapping pairings that cannot partition
// (any choice double-covers B or leaves an end leg bare) must come back
// infeasible.
func TestPBSolver_Infeasible(t *testing.T) {
	m := buildModel(t,
		[]string{"A", "B", "C"},
		[][]string{{"A", "B"}, {"B", "C"}},
		[]float64{1, 1},
	)

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusInfeasible, res.Status, "no exact cover exists")
	assert.Empty(t, res.Selected, "no selection on infeasibility")
}

// TestPBSolver_ZeroCoverageShortCircuit: a leg no pairing covers makes
// the model structurally unsatisfiable without invoking the engine.
func TestPBSolver_ZeroCoverageShortCircuit(t *testing.T) {
	m := buildModel(t,
		[]string{"A", "B"},
		[][]string{{"A"}},
		[]float64{1},
	)

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusInfeasible, res.Status, "uncovered leg B forces infeasibility")
}

// TestPBSolver_EmptyModel: nothing to cover and nothing to choose — the
// empty selection is trivially optimal.
func TestPBSolver_EmptyModel(t *testing.T) {
	m := &spp.Model{Costs: nil, Inc: spp.NewIncidence(0, 0), Sense: spp.SenseExactlyOne}

	res, err := spp.NewPBSolver().Solve(m)
	require.NoError(t, err)

	assert.Equal(t, spp.StatusOptimal, res.Status, "vacuous model is optimal")
	assert.Empty(t, res.Selected)
}
