package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInputDoc = `structure: system.tpr
trajectory: md.xtc
index: index.ndx
type: !CGOrder
  beads: "@membrane"
output: order.yaml
membrane_normal: z
`

const invalidInputDoc = `structure: system.tpr
trajectory: md.xtc
index: index.ndx
type: !CGOrder
  beads: "@membrane"
output: order.yaml
membrane_normal: z
begin: 500
end: 100
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.yaml", validInputDoc)
	bad := writeInput(t, dir, "bad.yaml", invalidInputDoc)
	missing := filepath.Join(dir, "missing.yaml")

	results := checkFiles([]string{good, bad, missing}, 2, false)
	require.Len(t, results, 3)

	// results keep the input order
	assert.Equal(t, good, results[0].path)
	assert.NoError(t, results[0].err)

	assert.Equal(t, bad, results[1].path)
	assert.Error(t, results[1].err)
	assert.Contains(t, results[1].err.Error(), "begin")

	assert.Equal(t, missing, results[2].path)
	assert.Error(t, results[2].err)
}

func TestCheckFiles_SingleWorker(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 5)
	for i := range paths {
		name := fmt.Sprintf("input%d.yaml", i)
		paths[i] = writeInput(t, dir, name, validInputDoc)
	}

	results := checkFiles(paths, 1, false)
	require.Len(t, results, len(paths))
	for i, res := range results {
		assert.Equal(t, paths[i], res.path)
		assert.NoError(t, res.err)
	}
}

func TestShowProgress(t *testing.T) {
	checkNoProgress = false
	quiet = false
	t.Cleanup(func() { checkNoProgress = false; quiet = false })

	assert.False(t, showProgress(1))
	assert.False(t, showProgress(progressThreshold))
	assert.True(t, showProgress(progressThreshold+1))

	checkNoProgress = true
	assert.False(t, showProgress(progressThreshold+1))

	checkNoProgress = false
	quiet = true
	assert.False(t, showProgress(progressThreshold+1))
}
