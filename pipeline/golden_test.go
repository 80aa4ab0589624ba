package pipeline_test

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// assertGolden compares got against a golden file.
// When -update is set, it writes the golden file instead.
func assertGolden(t *testing.T, goldenPath, got string) {
	t.Helper()

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.Equal(t, string(want), got)
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	return data
}
