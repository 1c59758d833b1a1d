package pairing_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewspp/pairing"
)

// TestPoolRoundTrip verifies that Write/Read preserve order, bases,
// duties and costs (IDs are intentionally not persisted).
func TestPoolRoundTrip(t *testing.T) {
	pool := []pairing.Pairing{
		{ID: "SOL_1", Base: "ARN", Duties: []string{"D1", "D2"}, Cost: 700},
		{Base: "OSL", Duties: []string{"D2", "D3", "D4"}, Cost: 800},
	}

	var buf bytes.Buffer
	require.NoError(t, pairing.WritePool(&buf, pool), "encoding must succeed")

	got, err := pairing.ReadPool(&buf)
	require.NoError(t, err, "decoding must succeed")
	require.Len(t, got, 2, "entry count preserved")

	assert.Equal(t, "ARN", got[0].Base, "base preserved")
	assert.Equal(t, []string{"D1", "D2"}, got[0].Duties, "duty order preserved")
	assert.Equal(t, 700.0, got[0].Cost, "cost preserved")
	assert.Empty(t, got[0].ID, "IDs are not part of the pool format")
	assert.Equal(t, []string{"D2", "D3", "D4"}, got[1].Duties)
}

// TestPoolFileFormat pins the on-disk record shape: an array of
// {base, duties, cost} objects.
func TestPoolFileFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pairing.WritePool(&buf, []pairing.Pairing{
		{Base: "ARN", Duties: []string{"D1", "D2"}, Cost: 700},
	}))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"base": "ARN"`), "base field present: %s", out)
	assert.True(t, strings.Contains(out, `"duties"`), "duties field present")
	assert.True(t, strings.Contains(out, `"cost": 700`), "cost field present")
	assert.False(t, strings.Contains(out, `"id"`), "id must not be persisted")
}

// TestSaveLoadPool exercises the path-based helpers.
func TestSaveLoadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	pool := []pairing.Pairing{{Base: "CPH", Duties: []string{"D9", "D8"}, Cost: 700}}

	require.NoError(t, pairing.SavePool(path, pool), "save must succeed")

	got, err := pairing.LoadPool(path)
	require.NoError(t, err, "load must succeed")
	require.Len(t, got, 1)
	assert.Equal(t, pool[0].Duties, got[0].Duties, "round trip preserves duties")

	_, err = pairing.LoadPool(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err, "loading a missing pool file errors")
}
