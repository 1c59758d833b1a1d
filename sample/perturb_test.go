package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewspp/sample"
)

// TestLocalPerturb_FourDuties pins the exact candidate list and order
// for a four-duty sequence: two end trims, two interior deletions, then
// the midpoint split.
func TestLocalPerturb_FourDuties(t *testing.T) {
	got := sample.LocalPerturb([]string{"D1", "D2", "D3", "D4"})

	want := [][]string{
		{"D2", "D3", "D4"},
		{"D1", "D2", "D3"},
		{"D1", "D3", "D4"},
		{"D1", "D2", "D4"},
		{"D1", "D2"},
		{"D3", "D4"},
	}
	assert.Equal(t, want, got, "exactly six candidates in fixed order")
}

// TestLocalPerturb_ThreeDuties: end trims plus one interior deletion; no
// midpoint split (the left half would be a single duty).
func TestLocalPerturb_ThreeDuties(t *testing.T) {
	got := sample.LocalPerturb([]string{"A", "B", "C"})

	want := [][]string{
		{"B", "C"},
		{"A", "B"},
		{"A", "C"},
	}
	assert.Equal(t, want, got, "three candidates for a three-duty pairing")
}

// TestLocalPerturb_TwoDuties yields nothing: trims need L > 2, no
// interior indices exist, and neither half of a split reaches length 2.
func TestLocalPerturb_TwoDuties(t *testing.T) {
	assert.Empty(t, sample.LocalPerturb([]string{"A", "B"}), "two-duty pairings have no local variants")
}

// TestLocalPerturb_NoAliasing ensures candidates are fresh copies; the
// source sequence must stay untouched when outputs are mutated.
func TestLocalPerturb_NoAliasing(t *testing.T) {
	src := []string{"D1", "D2", "D3", "D4"}
	got := sample.LocalPerturb(src)
	require.NotEmpty(t, got)

	got[0][0] = "MUTATED"
	assert.Equal(t, []string{"D1", "D2", "D3", "D4"}, src, "source must not alias candidates")
}

// TestForcedWindow_FirstNotLast: a forced duty at index 0 of a longer
// pairing uses the not-last branch and keeps the duty covered.
func TestForcedWindow_FirstNotLast(t *testing.T) {
	got := sample.ForcedWindow("X", []string{"X", "Y", "Z"})
	assert.Equal(t, []string{"X", "Y"}, got, "first duty pairs with its successor")
}

// TestForcedWindow_Interior: a non-first duty pairs with its
// predecessor.
func TestForcedWindow_Interior(t *testing.T) {
	got := sample.ForcedWindow("Y", []string{"X", "Y", "Z"})
	assert.Equal(t, []string{"X", "Y"}, got, "interior duty pairs with its predecessor")
}

// TestForcedWindow_Last: the final duty also pairs with its
// predecessor.
func TestForcedWindow_Last(t *testing.T) {
	got := sample.ForcedWindow("Z", []string{"X", "Y", "Z"})
	assert.Equal(t, []string{"Y", "Z"}, got, "last duty pairs with its predecessor")
}

// TestForcedWindow_SingleDuty: a duty that is both first and only has no
// valid two-duty window.
func TestForcedWindow_SingleDuty(t *testing.T) {
	assert.Nil(t, sample.ForcedWindow("X", []string{"X"}), "singleton pairings yield no window")
}

// TestForcedWindow_Absent: a duty not present in the sequence yields
// nothing.
func TestForcedWindow_Absent(t *testing.T) {
	assert.Nil(t, sample.ForcedWindow("Q", []string{"X", "Y"}), "absent duty yields no window")
}

// TestRecombine cuts both sequences at min(len)/2 and joins head₁+tail₂.
func TestRecombine(t *testing.T) {
	a := []string{"A1", "A2", "A3", "A4"}
	b := []string{"B1", "B2", "B3", "B4", "B5", "B6"}

	got := sample.Recombine(a, b)
	assert.Equal(t, []string{"A1", "A2", "B3", "B4", "B5", "B6"}, got,
		"cut = min(4,6)/2 = 2: two-duty head of a, four-duty tail of b")
}

// TestRecombine_ShortSource: with a single-duty source the cut is zero
// and the result is b verbatim (the builder's min-length filter handles
// such degenerates downstream).
func TestRecombine_ShortSource(t *testing.T) {
	got := sample.Recombine([]string{"A1"}, []string{"B1", "B2"})
	assert.Equal(t, []string{"B1", "B2"}, got, "cut 0 passes b through")
}
