package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "src", "views"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git", "objects"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "src", "views", "V.js"), []byte("view"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "HEAD"), []byte("ref"), 0644))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, Mirror(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "src", "views", "V.js"))
	require.NoError(t, err)
	assert.Equal(t, "view", string(data))

	_, err = os.Stat(filepath.Join(dst, ".git"))
	assert.True(t, os.IsNotExist(err), "source .git must not be mirrored")
}

func TestMirror_RefusesExistingDestination(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	err := Mirror(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPatch(t *testing.T) {
	before := "define([\"a\"], function (A) {\n  return A;\n});\n"
	after := "import A from 'a';\n\nexport default A;\n"

	patch := Patch(before, after)
	assert.NotEmpty(t, patch)
	assert.Contains(t, patch, "@@")

	assert.Empty(t, Patch("same", "same"), "identical text produces no patch")
}

func TestWritePatches(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "patches")
	changes := []Change{
		{Path: "src/views/V.js", Before: "old\n", After: "new\n"},
		{Path: "src/models/M.js", Before: "a\n", After: "b\n"},
	}

	require.NoError(t, WritePatches(dir, changes))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), ".patch"))
		assert.NotContains(t, entry.Name(), "/")
	}
}

func TestPatchName_Deterministic(t *testing.T) {
	assert.Equal(t, patchName("src/views/V.js"), patchName("src/views/V.js"))
	assert.NotEqual(t, patchName("src/views/V.js"), patchName("src/models/V.js"))
}
