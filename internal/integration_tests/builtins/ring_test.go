package builtins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/meshsweep/internal/app"
	"github.com/vk/meshsweep/internal/testutil"
)

func TestRing_FullRun(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"ring"}})

	// --- Assert ---
	require.NoError(t, result.Err)

	calls := result.Recorder.Calls()
	require.Len(t, calls, 16, "one full run is exactly 16 invocations")

	first, last := calls[0], calls[15]
	assert.Equal(t, "ring.geo", first.GeoFile)
	assert.Equal(t, "ring0.h5", first.OutFile)
	assert.Equal(t, "-setnumber p 0", first.Options)
	assert.Equal(t, "ring_antisym.geo", last.GeoFile)
	assert.Equal(t, "ring_antisym5.h5", calls[13].OutFile)
	assert.Equal(t, "ring_antisym7.h5", last.OutFile)
	assert.Equal(t, "-setnumber p 7", last.Options)

	seen := make(map[string]struct{})
	for _, inv := range calls {
		assert.Equal(t, inv.Geometry+".geo", inv.GeoFile)
		_, dup := seen[inv.OutFile]
		assert.False(t, dup, "duplicate output %q", inv.OutFile)
		seen[inv.OutFile] = struct{}{}
	}
}

func TestRing_DoesNotEcho(t *testing.T) {
	t.Parallel()

	result := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"ring"}})
	require.NoError(t, result.Err)

	// Output names show up inside log records but never as bare echo lines.
	for _, line := range strings.Split(result.LogOutput, "\n") {
		assert.NotEqual(t, "ring0.h5", line)
		assert.NotEqual(t, "ring_antisym7.h5", line)
	}
}

func TestDefaultRun_CoversAllBuiltins(t *testing.T) {
	t.Parallel()

	// No requested names: every compiled-in sweep runs, in registration order.
	result := testutil.RunSweepTest(t, nil, app.Config{})
	require.NoError(t, result.Err)

	outs := result.Recorder.OutFiles()
	require.Len(t, outs, 21)
	assert.Equal(t, "study12_12_0.h5", outs[0])
	assert.Equal(t, "ring0.h5", outs[5])
	assert.Equal(t, "ring_antisym7.h5", outs[20])
}

func TestUnknownSweepName_Fails(t *testing.T) {
	t.Parallel()

	result := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"study13"}})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `unknown sweep "study13"`)
	assert.Empty(t, result.Recorder.Calls())
}
