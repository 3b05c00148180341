package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRun(t *testing.T, stdin string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	runCmd.SetOut(&out)
	runCmd.SetErr(&errOut)
	runCmd.SetIn(strings.NewReader(stdin))
	defer func() {
		runCmd.SetOut(nil)
		runCmd.SetErr(nil)
		runCmd.SetIn(nil)
	}()

	err := runBenchmark(runCmd, nil)
	return out.String(), err
}

func tableRows(output string) []string {
	var rows []string
	inTable := false
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "---") {
			inTable = true
			continue
		}
		if inTable && strings.Contains(line, " | ") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestRunCommandStructure(t *testing.T) {
	assert.NotNil(t, runCmd)
	assert.Equal(t, "run", runCmd.Use)
	assert.NotEmpty(t, runCmd.Short)
	assert.Contains(t, runCmd.Long, "Example:")
	assert.NotNil(t, runCmd.RunE)

	for _, name := range []string{"sizes", "no-prompt", "no-progress"} {
		assert.NotNil(t, runCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestRunBenchmark_WithSizes(t *testing.T) {
	resetFlags(t)
	runSizes = []int{50, 1, 10}
	seed = 1
	verify = true

	out, err := execRun(t, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "Welcome", "no prompt when sizes are given")
	assert.Contains(t, out, "Input Size | Quicksort (s) | Mergesort (s)")

	rows := tableRows(out)
	require.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "1 |"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[1]), "10 |"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[2]), "50 |"))
}

func TestRunBenchmark_Prompt(t *testing.T) {
	resetFlags(t)
	seed = 3

	out, err := execRun(t, "20\nabc\n-4\n5\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "Quicksort and Mergesort")
	assert.Contains(t, out, "Input must be a number!")
	assert.Contains(t, out, "Input size cannot be negative!")
	assert.Contains(t, out, "Analyzing algorithm complexity...")

	rows := tableRows(out)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "5 |"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[1]), "20 |"))
}

func TestRunBenchmark_PromptDefaults(t *testing.T) {
	resetFlags(t)
	seed = 5
	runs = 1

	out, err := execRun(t, "0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Using default sizes...")
	assert.Len(t, tableRows(out), 8)
}

func TestRunBenchmark_NoPrompt(t *testing.T) {
	resetFlags(t)
	runNoPrompt = true
	runs = 1

	out, err := execRun(t, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "Welcome")
	rows := tableRows(out)
	require.Len(t, rows, 8)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[7]), "1000 |"))
}

func TestRunBenchmark_SingleSorterByScore(t *testing.T) {
	resetFlags(t)
	runSizes = []int{25}
	sorterSel = []string{"mergesort"}
	sortKey = "score"

	out, err := execRun(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "Input Size | Mergesort (s)")
	assert.NotContains(t, out, "Quicksort (s)")
}

func TestRunBenchmark_ConfigFile(t *testing.T) {
	resetFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "bench.yaml")
	content := `
benchmark:
  runs: 1
  sizes: [30, 3]
  verify: true
output:
  progress: false
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	out, err := execRun(t, "")
	require.NoError(t, err)

	rows := tableRows(out)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "3 |"), "configured sizes are sorted")
}

func TestRunBenchmark_Errors(t *testing.T) {
	t.Run("negative size flag", func(t *testing.T) {
		resetFlags(t)
		runSizes = []int{10, -1}
		_, err := execRun(t, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "benchmark.sizes[1]")
	})

	t.Run("unknown sorter", func(t *testing.T) {
		resetFlags(t)
		runSizes = []int{10}
		sorterSel = []string{"bogosort"}
		_, err := execRun(t, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown sorter")
	})
}
