package builtins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/meshsweep/internal/app"
	"github.com/vk/meshsweep/internal/testutil"
)

func TestStudy12_FullRun(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"study12"}})

	// --- Assert ---
	require.NoError(t, result.Err)

	calls := result.Recorder.Calls()
	require.Len(t, calls, 5, "one full run is exactly 5 invocations")

	first, last := calls[0], calls[4]
	assert.Equal(t, "study12.geo", first.GeoFile)
	assert.Equal(t, "study12_12_0.h5", first.OutFile)
	assert.Equal(t, "-setnumber split 0 -setnumber exp5 12", first.Options)
	assert.Equal(t, "study12_12_4.h5", last.OutFile)
	assert.Equal(t, "-setnumber split 4 -setnumber exp5 12", last.Options)

	seen := make(map[string]struct{})
	for _, inv := range calls {
		assert.Equal(t, "study12.geo", inv.GeoFile)
		_, dup := seen[inv.OutFile]
		assert.False(t, dup, "duplicate output %q", inv.OutFile)
		seen[inv.OutFile] = struct{}{}
	}
}

func TestStudy12_EchoesOutputNames(t *testing.T) {
	t.Parallel()

	result := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"study12"}})
	require.NoError(t, result.Err)

	// The original script echoes each filename as its own stdout line,
	// interleaved with the structured log output.
	lines := strings.Split(result.LogOutput, "\n")
	for _, want := range []string{"study12_12_0.h5", "study12_12_2.h5", "study12_12_4.h5"} {
		assert.Contains(t, lines, want)
	}
}

func TestStudy12_IsIdempotent(t *testing.T) {
	t.Parallel()

	a := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"study12"}})
	b := testutil.RunSweepTest(t, nil, app.Config{Requested: []string{"study12"}})
	require.NoError(t, a.Err)
	require.NoError(t, b.Err)

	assert.Equal(t, a.Recorder.Calls(), b.Recorder.Calls(),
		"two runs must produce identical invocation sequences")
}
