package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortersCommandStructure(t *testing.T) {
	assert.NotNil(t, sortersCmd)
	assert.Equal(t, "sorters", sortersCmd.Use)
	assert.NotEmpty(t, sortersCmd.Short)
	assert.NotEmpty(t, sortersCmd.Long)
	assert.NotNil(t, sortersCmd.RunE)
}

func TestRunSorters(t *testing.T) {
	var buf bytes.Buffer
	sortersCmd.SetOut(&buf)
	defer sortersCmd.SetOut(nil)

	require.NoError(t, runSorters(sortersCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "1. quicksort")
	assert.Contains(t, out, "2. mergesort")
	assert.Contains(t, out, "(column: Mergesort)")
	assert.Contains(t, out, "  - score")
	assert.Contains(t, out, "Total: 2 sorter(s)")
}
