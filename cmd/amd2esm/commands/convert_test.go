package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConvertCommand_Flags(t *testing.T) {
	cmd := NewConvertCommand()

	for _, name := range []string{"config", "source", "output", "record", "patches", "no-git", "verbose", "quiet"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "convert [source-dir]", cmd.Use)
}

func TestConvertCommand_EndToEnd(t *testing.T) {
	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	src := t.TempDir()
	viewDir := filepath.Join(src, "src", "js", "views")
	require.NoError(t, os.MkdirAll(viewDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(viewDir, "V.js"),
		[]byte("define([\"backbone\"], function (Backbone) {\n  var V = Backbone.View.extend({});\n  return V;\n});\n"), 0644))

	work := t.TempDir()
	out := filepath.Join(work, "out")
	record := filepath.Join(work, "record.csv")

	cmd := NewConvertCommand()
	cmd.SetArgs([]string{src,
		"--output", out,
		"--record", record,
		"--no-git",
		"--quiet",
	})
	require.NoError(t, cmd.Execute())

	converted, err := os.ReadFile(filepath.Join(out, "src", "js", "views", "V.js"))
	require.NoError(t, err)
	assert.Contains(t, string(converted), "import Backbone from 'backbone';")
	assert.Contains(t, string(converted), "export default V;")

	_, err = os.Stat(record)
	assert.NoError(t, err)
}
