package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray config file is found.
	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultRecordPath, cfg.Report.RecordPath)
	assert.Equal(t, DefaultSummaryPath, cfg.Report.SummaryPath)
	assert.True(t, cfg.Snapshot.Git)
	assert.True(t, cfg.Discovery.SkipVendored)
	assert.False(t, cfg.Report.Patches)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conv.yaml")
	content := `
source: /data/metacatui
output: /data/metacatui-es6
report:
  record_path: edits.csv
  patches: true
snapshot:
  git: false
discovery:
  extra_ignore:
    - "**/vendor/**/*.js"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/metacatui", cfg.Source)
	assert.Equal(t, "/data/metacatui-es6", cfg.Output)
	assert.Equal(t, "edits.csv", cfg.Report.RecordPath)
	assert.True(t, cfg.Report.Patches)
	assert.False(t, cfg.Snapshot.Git)
	assert.Equal(t, []string{"**/vendor/**/*.js"}, cfg.Discovery.ExtraIgnore)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultSummaryPath, cfg.Report.SummaryPath)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSource)

	cfg.Source = "/src"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingOutput)

	cfg.Output = "/out"
	assert.NoError(t, cfg.Validate())
}
